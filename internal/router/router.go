package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SadiqNaizam/mlo-a774-6a47/internal/cart"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/checkout"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/menu"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/metrics"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/middleware"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/order"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/restaurant"
)

// Deps collects everything the route table needs. Metrics may be nil (tests).
type Deps struct {
	Restaurants *restaurant.Handler
	Menus       *menu.Handler
	Carts       *cart.Handler
	Checkout    *checkout.Handler
	Orders      *order.Handler

	CartService  *cart.Service
	OrderService *order.Service

	Metrics *metrics.ServerMetrics
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	r.Use(middleware.SessionMiddleware())

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Catalog
	r.GET("/restaurants", deps.Restaurants.ListRestaurants)
	r.GET("/restaurants/:id", deps.Restaurants.GetRestaurant)
	r.GET("/restaurants/:id/menu", deps.Menus.GetMenu)

	// Cart
	r.GET("/cart", deps.Carts.GetCart)
	r.POST("/cart/items", deps.Carts.AddItem)
	r.PATCH("/cart/items/:itemID", deps.Carts.UpdateQuantity)

	// Checkout + tracking
	r.POST("/checkout", deps.Checkout.PlaceOrder)
	r.GET("/orders/:number/tracking", deps.Orders.GetTracking)

	// Session teardown: drop the cart and cancel any live simulation so no
	// timer fires against a discarded session.
	r.DELETE("/session", func(c *gin.Context) {
		sidVal, _ := c.Get("sessionID")
		sid, _ := sidVal.(string)
		if sid != "" {
			deps.CartService.Clear(sid)
			deps.OrderService.CancelForSession(sid)
		}
		c.SetCookie("session_id", "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"status": "session ended"})
	})

	return r
}
