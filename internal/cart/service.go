package cart

import (
	"github.com/SadiqNaizam/mlo-a774-6a47/internal/menu"
)

// Catalog resolves menu items for price/name snapshots.
type Catalog interface {
	FindItem(itemID string) (*menu.Item, error)
}

type Service struct {
	store   *InMemoryStore
	catalog Catalog
}

func NewService(store *InMemoryStore, catalog Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

// AddItem resolves the catalog item and merges it into the session's cart.
func (s *Service) AddItem(sessionID, restaurantID, itemID string, quantity int, instructions string) (*Summary, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.catalog.FindItem(itemID)
	if err != nil {
		return nil, err
	}

	c := s.store.Get(sessionID)
	if err := c.AddOrMerge(item, quantity, instructions); err != nil {
		return nil, err
	}
	if restaurantID != "" {
		c.SetRestaurantID(restaurantID)
	}

	return s.summarize(c), nil
}

// UpdateQuantity sets a line's quantity; below 1 removes the line.
func (s *Service) UpdateQuantity(sessionID, itemID string, quantity int) (*Summary, error) {
	c := s.store.Get(sessionID)
	if err := c.SetQuantity(itemID, quantity); err != nil {
		return nil, err
	}
	return s.summarize(c), nil
}

func (s *Service) GetCart(sessionID string) *Summary {
	return s.summarize(s.store.Get(sessionID))
}

// Snapshot hands the raw cart to checkout.
func (s *Service) Snapshot(sessionID string) *Cart {
	return s.store.Get(sessionID)
}

func (s *Service) Clear(sessionID string) {
	s.store.Clear(sessionID)
}

func (s *Service) summarize(c *Cart) *Summary {
	lines := c.Lines()
	views := make([]LineView, len(lines))
	for i, line := range lines {
		views[i] = LineView{
			ItemID:       line.ItemID,
			Name:         line.Name,
			UnitPrice:    line.UnitPrice.StringFixed(2),
			Quantity:     line.Quantity,
			Instructions: line.Instructions,
		}
	}

	return &Summary{
		RestaurantID: c.RestaurantID(),
		Lines:        views,
		Subtotal:     c.Subtotal().StringFixed(2),
		ItemCount:    c.ItemCount(),
	}
}

// Summary is the JSON shape handlers return for a cart.
type Summary struct {
	RestaurantID string     `json:"restaurant_id,omitempty"`
	Lines        []LineView `json:"lines"`
	Subtotal     string     `json:"subtotal"`
	ItemCount    int        `json:"item_count"`
}

type LineView struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions,omitempty"`
}
