package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type stepView struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Active    bool   `json:"active"`
}

type lineView struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions,omitempty"`
}

// --------------------------------------------------
// GET /orders/:number/tracking
// --------------------------------------------------
func (h *Handler) GetTracking(c *gin.Context) {
	o, err := h.service.Track(c.Param("number"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
		return
	}

	status := o.Status()
	current := status.index()

	steps := make([]stepView, len(statusSequence))
	for i, st := range statusSequence {
		steps[i] = stepView{
			ID:        string(st),
			Label:     st.Label(),
			Completed: i < current,
			Active:    i == current,
		}
	}

	lines := make([]lineView, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = lineView{
			ItemID:       l.ItemID,
			Name:         l.Name,
			UnitPrice:    l.UnitPrice.StringFixed(2),
			Quantity:     l.Quantity,
			Instructions: l.Instructions,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order": gin.H{
			"number":          o.Number,
			"restaurant_id":   o.RestaurantID,
			"restaurant_name": o.RestaurantName,
			"lines":           lines,
			"subtotal":        o.Subtotal.StringFixed(2),
			"delivery_fee":    o.DeliveryFee.StringFixed(2),
			"total":           o.Total.StringFixed(2),
			"payment_method":  o.PaymentMethod,
			"placed_at":       o.PlacedAt,
			"eta_window":      "15-25 minutes",
		},
		"status": status,
		"steps":  steps,
		"courier": gin.H{
			"progress": o.Courier().Progress(),
			"eta":      o.Courier().ETA(),
		},
	})
}
