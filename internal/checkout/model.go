package checkout

// Request is the checkout form submission.
type Request struct {
	FullName      string `json:"full_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code"`
	PaymentMethod string `json:"payment_method"`
	PromoCode     string `json:"promo_code"`
}
