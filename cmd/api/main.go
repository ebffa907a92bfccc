package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/SadiqNaizam/mlo-a774-6a47/internal/cart"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/checkout"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/menu"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/metrics"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/order"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/restaurant"
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// ───────────────────────── CATALOG ─────────────────────────
	restaurantRepo := restaurant.NewInMemoryRepository(restaurant.Seed())
	menuRepo := menu.NewInMemoryRepository(menu.Seed(restaurant.SeedIDs()))

	// ───────────────────────── SERVICES ─────────────────────────
	restaurantService := restaurant.NewService(restaurantRepo)
	menuService := menu.NewService(menuRepo)

	cartService := cart.NewService(cart.NewInMemoryStore(), menuService)

	orderService := order.NewService(order.NewInMemoryStore())
	defer orderService.Shutdown()

	checkoutService := checkout.NewService(cartService, restaurantService, orderService)

	// ───────────────────────── HANDLERS ─────────────────────────
	restaurantHandler := restaurant.NewHandler(restaurantService)
	menuHandler := menu.NewHandler(menuService)
	cartHandler := cart.NewHandler(cartService)
	checkoutHandler := checkout.NewHandler(checkoutService)
	orderHandler := order.NewHandler(orderService)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		Restaurants:  restaurantHandler,
		Menus:        menuHandler,
		Carts:        cartHandler,
		Checkout:     checkoutHandler,
		Orders:       orderHandler,
		CartService:  cartService,
		OrderService: orderService,
		Metrics:      metrics.NewServerMetrics(),
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
