package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SadiqNaizam/mlo-a774-6a47/internal/menu"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func sessionID(c *gin.Context) (string, bool) {
	idVal, exists := c.Get("sessionID")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
		return "", false
	}
	id, ok := idVal.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid session context"})
		return "", false
	}
	return id, true
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		RestaurantID string `json:"restaurant_id"`
		ItemID       string `json:"item_id"`
		Quantity     int    `json:"quantity"`
		Instructions string `json:"instructions"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sid, ok := sessionID(c)
	if !ok {
		return
	}

	summary, err := h.service.AddItem(sid, req.RestaurantID, req.ItemID, req.Quantity, req.Instructions)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, menu.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		}
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// --------------------------------------------------
// PATCH /cart/items/:itemID
// --------------------------------------------------
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sid, ok := sessionID(c)
	if !ok {
		return
	}

	summary, err := h.service.UpdateQuantity(sid, c.Param("itemID"), req.Quantity)
	if err != nil {
		if errors.Is(err, ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.service.GetCart(sid))
}
