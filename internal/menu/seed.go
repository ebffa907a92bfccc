package menu

import "github.com/shopspring/decimal"

// Seed builds the demo menu for every restaurant in the catalog. The demo
// serves the same six dishes everywhere, so item IDs are global.
func Seed(restaurantIDs []string) []*Menu {
	menus := make([]*Menu, 0, len(restaurantIDs))
	for _, id := range restaurantIDs {
		menus = append(menus, &Menu{
			RestaurantID: id,
			Sections:     demoSections(),
		})
	}
	return menus
}

func demoSections() []Section {
	return []Section{
		{
			Name: "Appetizers",
			Items: []Item{
				{
					ID:          "m1",
					Name:        "Bruschetta",
					Description: "Toasted bread with tomatoes, garlic, and basil.",
					Price:       price("8.99"),
					ImageURL:    "https://images.unsplash.com/photo-1505253716362-afb542c38548?q=80&w=2070",
				},
				{
					ID:          "m2",
					Name:        "Stuffed Mushrooms",
					Description: "Mushrooms filled with cheese and herbs.",
					Price:       price("10.50"),
					ImageURL:    "https://images.unsplash.com/photo-1629552199324-93565e38f1b6?q=80&w=1964",
				},
			},
		},
		{
			Name: "Main Courses",
			Items: []Item{
				{
					ID:          "m3",
					Name:        "Pasta Carbonara",
					Description: "Classic pasta with eggs, cheese, and pancetta.",
					Price:       price("16.00"),
					ImageURL:    "https://images.unsplash.com/photo-1600803907087-f56d462fd26b?q=80&w=1974",
				},
				{
					ID:          "m4",
					Name:        "Margherita Pizza",
					Description: "Simple and delicious pizza with fresh mozzarella and basil.",
					Price:       price("14.50"),
					ImageURL:    "https://images.unsplash.com/photo-1598021680133-eb3a7331d3b0?q=80&w=2103",
				},
				{
					ID:          "m5",
					Name:        "Grilled Salmon",
					Description: "Served with asparagus and lemon butter sauce.",
					Price:       price("22.99"),
					ImageURL:    "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?q=80&w=2070",
				},
			},
		},
		{
			Name: "Desserts",
			Items: []Item{
				{
					ID:          "m6",
					Name:        "Tiramisu",
					Description: "A coffee-flavored Italian classic.",
					Price:       price("9.00"),
					ImageURL:    "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?q=80&w=2070",
				},
			},
		},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
