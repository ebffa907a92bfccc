package menu

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

// --------------------------------------------------
// GET /restaurants/:id/menu
// --------------------------------------------------
func (h *Handler) GetMenu(c *gin.Context) {
	m, err := h.service.GetMenu(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrMenuNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu"})
		return
	}

	c.JSON(http.StatusOK, m)
}
