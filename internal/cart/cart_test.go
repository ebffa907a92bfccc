package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/SadiqNaizam/mlo-a774-6a47/internal/menu"
)

func item(id, name, price string) *menu.Item {
	return &menu.Item{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestAddOrMergeNeverDuplicatesLines(t *testing.T) {
	c := NewCart()

	if err := c.AddOrMerge(item("m1", "Bruschetta", "8.99"), 2, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.AddOrMerge(item("m1", "Bruschetta", "8.99"), 3, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
}

func TestAddOrMergeAppendsInstructions(t *testing.T) {
	c := NewCart()

	if err := c.AddOrMerge(item("m1", "Bruschetta", "8.99"), 1, "no garlic"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.AddOrMerge(item("m1", "Bruschetta", "8.99"), 1, "extra basil"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := c.Lines()[0].Instructions
	want := "no garlic\nextra basil"
	if got != want {
		t.Fatalf("expected instructions %q, got %q", want, got)
	}
}

func TestAddOrMergeRejectsNonPositiveQuantity(t *testing.T) {
	c := NewCart()

	if err := c.AddOrMerge(item("m1", "Bruschetta", "8.99"), 0, ""); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := c.AddOrMerge(item("m1", "Bruschetta", "8.99"), -2, ""); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if !c.Empty() {
		t.Fatal("cart should still be empty")
	}
}

func TestSubtotalEndToEnd(t *testing.T) {
	c := NewCart()

	// add m3 ($16.00) x2, then m4 ($14.50) x1 -> 46.50
	if err := c.AddOrMerge(item("m3", "Pasta Carbonara", "16.00"), 2, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.AddOrMerge(item("m4", "Margherita Pizza", "14.50"), 1, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.Subtotal().StringFixed(2); got != "46.50" {
		t.Fatalf("expected subtotal 46.50, got %s", got)
	}

	// setQuantity m3 -> 1 -> 30.50
	if err := c.SetQuantity("m3", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Subtotal().StringFixed(2); got != "30.50" {
		t.Fatalf("expected subtotal 30.50, got %s", got)
	}
}

func TestSubtotalHasNoFloatDrift(t *testing.T) {
	c := NewCart()

	// 100 x $0.10 must be exactly $10.00
	for i := 0; i < 100; i++ {
		if err := c.AddOrMerge(item("m9", "Dipping Sauce", "0.10"), 1, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := c.Subtotal().StringFixed(2); got != "10.00" {
		t.Fatalf("expected subtotal 10.00, got %s", got)
	}
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	c := NewCart()

	if err := c.AddOrMerge(item("m1", "Bruschetta", "8.99"), 2, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SetQuantity("m1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !c.Empty() {
		t.Fatal("expected empty cart after removing the only line")
	}
	if got := c.Subtotal().StringFixed(2); got != "0.00" {
		t.Fatalf("expected subtotal 0.00, got %s", got)
	}
}

func TestSetQuantityUnknownLine(t *testing.T) {
	c := NewCart()

	if err := c.SetQuantity("missing", 3); err != ErrLineNotFound {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestItemCountSumsQuantities(t *testing.T) {
	c := NewCart()

	if err := c.AddOrMerge(item("m1", "Bruschetta", "8.99"), 2, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.AddOrMerge(item("m2", "Stuffed Mushrooms", "10.50"), 3, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.ItemCount(); got != 5 {
		t.Fatalf("expected item count 5, got %d", got)
	}
	if got := len(c.Lines()); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	c := NewCart()

	ids := []string{"m3", "m1", "m2"}
	for _, id := range ids {
		if err := c.AddOrMerge(item(id, "Dish "+id, "5.00"), 1, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	lines := c.Lines()
	for i, id := range ids {
		if lines[i].ItemID != id {
			t.Fatalf("expected line %d to be %s, got %s", i, id, lines[i].ItemID)
		}
	}
}
