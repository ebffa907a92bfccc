package checkout

import "testing"

func validRequest() Request {
	return Request{
		FullName:      "John Doe",
		Address:       "123 Delicious Lane",
		City:          "Springfield",
		ZipCode:       "12345",
		PaymentMethod: "credit-card",
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	req := validRequest()

	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidatePromoCodeIsOptional(t *testing.T) {
	req := validRequest()
	req.PromoCode = ""

	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	req.PromoCode = "WELCOME10"
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateFieldRules(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*Request)
		badField string
	}{
		{"short full name", func(r *Request) { r.FullName = "J" }, "full_name"},
		{"short address", func(r *Request) { r.Address = "1 st" }, "address"},
		{"short city", func(r *Request) { r.City = "X" }, "city"},
		{"zip too short", func(r *Request) { r.ZipCode = "1234" }, "zip_code"},
		{"zip too long", func(r *Request) { r.ZipCode = "123456" }, "zip_code"},
		{"zip not numeric", func(r *Request) { r.ZipCode = "12a45" }, "zip_code"},
		{"missing payment method", func(r *Request) { r.PaymentMethod = "" }, "payment_method"},
		{"unknown payment method", func(r *Request) { r.PaymentMethod = "cash" }, "payment_method"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			errs := req.Validate()
			if len(errs) != 1 {
				t.Fatalf("expected exactly 1 error, got %v", errs)
			}
			if _, ok := errs[tc.badField]; !ok {
				t.Fatalf("expected error on %s, got %v", tc.badField, errs)
			}
		})
	}
}

func TestValidateReportsEveryBadField(t *testing.T) {
	req := Request{}

	errs := req.Validate()
	for _, field := range []string{"full_name", "address", "city", "zip_code", "payment_method"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected error on %s, got %v", field, errs)
		}
	}
}

func TestValidateAcceptsAllPaymentMethods(t *testing.T) {
	for _, method := range []string{"credit-card", "paypal", "apple-pay"} {
		req := validRequest()
		req.PaymentMethod = method

		if errs := req.Validate(); len(errs) != 0 {
			t.Fatalf("method %s rejected: %v", method, errs)
		}
	}
}
