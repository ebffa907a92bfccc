package checkout

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SadiqNaizam/mlo-a774-6a47/internal/restaurant"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /checkout
// --------------------------------------------------
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	sidVal, exists := c.Get("sessionID")
	sid, ok := sidVal.(string)
	if !exists || !ok || sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
		return
	}

	o, err := h.service.PlaceOrder(sid, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.Is(err, restaurant.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart has no restaurant"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_number": o.Number,
		"total":        o.Total.StringFixed(2),
		"tracking_url": fmt.Sprintf("/orders/%s/tracking", o.Number),
	})
}
