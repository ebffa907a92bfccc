package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestStorefrontJourney walks the whole flow: list restaurants, fetch a menu,
// build a cart, check out, poll tracking, tear the session down.
func TestStorefrontJourney(t *testing.T) {
	r, orders := newTestRouter()
	defer orders.Shutdown()

	var cookies []*http.Cookie

	do := func(method, path string, body []byte) *httptest.ResponseRecorder {
		var req *http.Request
		if body != nil {
			req = httptest.NewRequest(method, path, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		for _, c := range cookies {
			req.AddCookie(c)
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Result().Cookies(); len(got) > 0 {
			cookies = got
		}
		return w
	}

	// browse
	if w := do(http.MethodGet, "/restaurants?cuisine=Italian&sort=rating", nil); w.Code != http.StatusOK {
		t.Fatalf("list restaurants: expected 200, got %d", w.Code)
	}
	if w := do(http.MethodGet, "/restaurants/2/menu", nil); w.Code != http.StatusOK {
		t.Fatalf("get menu: expected 200, got %d", w.Code)
	}

	// build cart: m3 x2 then m4 x1 -> 46.50
	addBody, _ := json.Marshal(map[string]interface{}{
		"restaurant_id": "2", "item_id": "m3", "quantity": 2,
	})
	if w := do(http.MethodPost, "/cart/items", addBody); w.Code != http.StatusCreated {
		t.Fatalf("add m3: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	addBody, _ = json.Marshal(map[string]interface{}{
		"restaurant_id": "2", "item_id": "m4", "quantity": 1,
	})
	if w := do(http.MethodPost, "/cart/items", addBody); w.Code != http.StatusCreated {
		t.Fatalf("add m4: expected 201, got %d", w.Code)
	}

	w := do(http.MethodGet, "/cart", nil)
	var cartResp struct {
		Subtotal  string `json:"subtotal"`
		ItemCount int    `json:"item_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cartResp); err != nil {
		t.Fatalf("failed to decode cart: %v", err)
	}
	if cartResp.Subtotal != "46.50" {
		t.Fatalf("expected subtotal 46.50, got %s", cartResp.Subtotal)
	}
	if cartResp.ItemCount != 3 {
		t.Fatalf("expected 3 items, got %d", cartResp.ItemCount)
	}

	// drop m3 to one serving -> 30.50
	patchBody, _ := json.Marshal(map[string]int{"quantity": 1})
	w = do(http.MethodPatch, "/cart/items/m3", patchBody)
	if w.Code != http.StatusOK {
		t.Fatalf("patch m3: expected 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cartResp); err != nil {
		t.Fatalf("failed to decode cart: %v", err)
	}
	if cartResp.Subtotal != "30.50" {
		t.Fatalf("expected subtotal 30.50, got %s", cartResp.Subtotal)
	}

	// checkout (restaurant 2 delivers free -> total 30.50)
	checkoutBody, _ := json.Marshal(map[string]string{
		"full_name":      "John Doe",
		"address":        "123 Delicious Lane",
		"city":           "Springfield",
		"zip_code":       "12345",
		"payment_method": "credit-card",
		"promo_code":     "WELCOME10",
	})
	w = do(http.MethodPost, "/checkout", checkoutBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var placed struct {
		OrderNumber string `json:"order_number"`
		Total       string `json:"total"`
		TrackingURL string `json:"tracking_url"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &placed); err != nil {
		t.Fatalf("failed to decode checkout response: %v", err)
	}
	if placed.Total != "30.50" {
		t.Fatalf("expected total 30.50, got %s", placed.Total)
	}

	// tracking starts at confirmed
	w = do(http.MethodGet, placed.TrackingURL, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("tracking: expected 200, got %d", w.Code)
	}
	var tracking struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &tracking); err != nil {
		t.Fatalf("failed to decode tracking: %v", err)
	}
	if tracking.Status != "confirmed" {
		t.Fatalf("expected status confirmed, got %s", tracking.Status)
	}

	// session teardown cancels the simulation and empties the cart
	if w := do(http.MethodDelete, "/session", nil); w.Code != http.StatusOK {
		t.Fatalf("delete session: expected 200, got %d", w.Code)
	}
}
