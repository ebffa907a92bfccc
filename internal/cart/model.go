package cart

import (
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/SadiqNaizam/mlo-a774-6a47/internal/menu"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrLineNotFound    = errors.New("cart line not found")
)

// Line is one catalog item in the cart. Name and unit price are snapshotted
// from the catalog when the item is first added.
type Line struct {
	ItemID       string          `json:"item_id"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	Instructions string          `json:"instructions,omitempty"`
}

// Cart holds one session's selected items. Lines are keyed by item ID so a
// duplicate add can never produce a second line for the same item; insertion
// order is kept separately for display.
type Cart struct {
	mu           sync.Mutex
	restaurantID string
	lines        map[string]*Line
	order        []string
}

func NewCart() *Cart {
	return &Cart{lines: make(map[string]*Line)}
}

// AddOrMerge inserts the item or, if a line for it already exists, increments
// its quantity and appends any new instructions on a fresh line of text.
func (c *Cart) AddOrMerge(item *menu.Item, quantity int, instructions string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[item.ID]; ok {
		line.Quantity += quantity
		if instructions != "" {
			line.Instructions = strings.TrimSpace(line.Instructions + "\n" + instructions)
		}
		return nil
	}

	c.lines[item.ID] = &Line{
		ItemID:       item.ID,
		Name:         item.Name,
		UnitPrice:    item.Price,
		Quantity:     quantity,
		Instructions: strings.TrimSpace(instructions),
	}
	c.order = append(c.order, item.ID)
	return nil
}

// SetQuantity replaces a line's quantity; anything below 1 removes the line.
func (c *Cart) SetQuantity(itemID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lines[itemID]; !ok {
		return ErrLineNotFound
	}

	if quantity < 1 {
		delete(c.lines, itemID)
		for i, id := range c.order {
			if id == itemID {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
		return nil
	}

	c.lines[itemID].Quantity = quantity
	return nil
}

// Subtotal is the exact sum of quantity x unit price over all lines,
// recomputed on every call.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ItemCount is the sum of line quantities (the cart-badge number), not the
// number of distinct lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

func (c *Cart) RestaurantID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.restaurantID
}

func (c *Cart) SetRestaurantID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restaurantID = id
}
