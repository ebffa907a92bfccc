package checkout

import "regexp"

var zipPattern = regexp.MustCompile(`^\d{5}$`)

var paymentMethods = map[string]bool{
	"credit-card": true,
	"paypal":      true,
	"apple-pay":   true,
}

// Validate checks every field and returns one message per failing field.
// An empty map means the request is valid.
func (r *Request) Validate() map[string]string {
	errs := make(map[string]string)

	if len(r.FullName) < 2 {
		errs["full_name"] = "Full name must be at least 2 characters."
	}
	if len(r.Address) < 5 {
		errs["address"] = "Please enter a valid address."
	}
	if len(r.City) < 2 {
		errs["city"] = "Please enter a city."
	}
	if !zipPattern.MatchString(r.ZipCode) {
		errs["zip_code"] = "Please enter a valid 5-digit zip code."
	}
	if !paymentMethods[r.PaymentMethod] {
		errs["payment_method"] = "You need to select a payment method."
	}

	return errs
}
