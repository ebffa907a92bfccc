package restaurant

import "github.com/shopspring/decimal"

// Restaurant is static catalog data, seeded once and never mutated.
type Restaurant struct {
	ID           string          `json:"id"`
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	ImageURL     string          `json:"image_url"`
	Cuisine      string          `json:"cuisine"`
	Rating       float64         `json:"rating"`
	DeliveryTime string          `json:"delivery_time"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
}
