package restaurant

import "github.com/shopspring/decimal"

// Seed returns the demo catalog.
func Seed() []*Restaurant {
	return []*Restaurant{
		{
			ID:           "1",
			Slug:         "the-sushi-spot",
			Name:         "The Sushi Spot",
			ImageURL:     "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?q=80&w=800",
			Cuisine:      "Japanese",
			Rating:       4.8,
			DeliveryTime: "20-30 min",
			DeliveryFee:  fee("2.99"),
		},
		{
			ID:           "2",
			Slug:         "pizza-palace",
			Name:         "Pizza Palace",
			ImageURL:     "https://images.unsplash.com/photo-1513104890138-7c749659a591?q=80&w=800",
			Cuisine:      "Italian",
			Rating:       4.5,
			DeliveryTime: "30-40 min",
			DeliveryFee:  fee("0"),
		},
		{
			ID:           "3",
			Slug:         "taco-town",
			Name:         "Taco Town",
			ImageURL:     "https://images.unsplash.com/photo-1565299585323-15d6e08547e9?q=80&w=800",
			Cuisine:      "Mexican",
			Rating:       4.7,
			DeliveryTime: "15-25 min",
			DeliveryFee:  fee("1.50"),
		},
		{
			ID:           "4",
			Slug:         "burger-bliss",
			Name:         "Burger Bliss",
			ImageURL:     "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?q=80&w=800",
			Cuisine:      "American",
			Rating:       4.3,
			DeliveryTime: "25-35 min",
			DeliveryFee:  fee("3.00"),
		},
		{
			ID:           "5",
			Slug:         "veggie-vibes",
			Name:         "Veggie Vibes",
			ImageURL:     "https://images.unsplash.com/photo-1498837167922-ddd27525d352?q=80&w=800",
			Cuisine:      "Vegetarian",
			Rating:       4.9,
			DeliveryTime: "30-40 min",
			DeliveryFee:  fee("0"),
		},
		{
			ID:           "6",
			Slug:         "curry-corner",
			Name:         "Curry Corner",
			ImageURL:     "https://images.unsplash.com/photo-1565557623262-b9a25b3935de?q=80&w=800",
			Cuisine:      "Indian",
			Rating:       4.6,
			DeliveryTime: "35-45 min",
			DeliveryFee:  fee("2.00"),
		},
		{
			ID:           "7",
			Slug:         "pasta-paradise",
			Name:         "Pasta Paradise",
			ImageURL:     "https://images.unsplash.com/photo-1621996346565-e32644d62303?q=80&w=800",
			Cuisine:      "Italian",
			Rating:       4.7,
			DeliveryTime: "25-35 min",
			DeliveryFee:  fee("2.50"),
		},
		{
			ID:           "8",
			Slug:         "ramen-republic",
			Name:         "Ramen Republic",
			ImageURL:     "https://images.unsplash.com/photo-1591814468924-caf88d1232e1?q=80&w=800",
			Cuisine:      "Japanese",
			Rating:       4.8,
			DeliveryTime: "20-30 min",
			DeliveryFee:  fee("1.00"),
		},
	}
}

// SeedIDs lists the IDs of the seeded catalog, in seed order.
func SeedIDs() []string {
	seed := Seed()
	ids := make([]string, len(seed))
	for i, r := range seed {
		ids[i] = r.ID
	}
	return ids
}

func fee(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
