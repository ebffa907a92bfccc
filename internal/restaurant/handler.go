package restaurant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /restaurants?max_fee=5.00&cuisine=Italian&cuisine=Japanese&sort=rating
// --------------------------------------------------
func (h *Handler) ListRestaurants(c *gin.Context) {
	f := Filter{
		Cuisines: c.QueryArray("cuisine"),
		SortBy:   c.DefaultQuery("sort", SortByRating),
	}

	if raw := c.Query("max_fee"); raw != "" {
		maxFee, err := decimal.NewFromString(raw)
		if err != nil || maxFee.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_fee"})
			return
		}
		f.MaxFee = &maxFee
	}

	if f.SortBy != SortByRating && f.SortBy != SortByDeliveryTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort key"})
		return
	}

	restaurants, err := h.service.ListRestaurants(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// --------------------------------------------------
// GET /restaurants/:id
// --------------------------------------------------
func (h *Handler) GetRestaurant(c *gin.Context) {
	rest, err := h.service.GetRestaurant(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant"})
		return
	}

	c.JSON(http.StatusOK, rest)
}
