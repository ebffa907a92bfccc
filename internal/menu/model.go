package menu

import "github.com/shopspring/decimal"

// Item is a single orderable dish. Catalog data, never mutated after seeding.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

// Section groups items under a display heading (Appetizers, Main Courses, ...)
type Section struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Menu is one restaurant's full sectioned menu
type Menu struct {
	RestaurantID string    `json:"restaurant_id"`
	Sections     []Section `json:"sections"`
}
