package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCart_AddItem(t *testing.T) {
	cart := NewCart()

	if err := cart.AddItem(testProduct("p1", "Noodles", "2.50", 100), 2); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestCart_AddItem_MergesSameProduct(t *testing.T) {
	cart := NewCart()
	product := testProduct("p1", "Noodles", "2.50", 100)

	cart.AddItem(product, 1)
	cart.AddItem(product, 1)

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("Expected a single merged line, got %d lines", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestCart_AddItem_InvalidQuantity(t *testing.T) {
	cart := NewCart()

	err := cart.AddItem(testProduct("p1", "Noodles", "2.50", 100), 0)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity, got: %v", err)
	}
	if len(cart.Lines()) != 0 {
		t.Errorf("Expected empty cart, got %d lines", len(cart.Lines()))
	}
}

func TestCart_UniqueLinesPerProduct(t *testing.T) {
	cart := NewCart()
	a := testProduct("p1", "Noodles", "2.50", 100)
	b := testProduct("p2", "Burger", "5.99", 30)

	cart.AddItem(a, 1)
	cart.AddItem(b, 2)
	cart.AddItem(a, 3)
	cart.AddItem(b, 1)

	seen := map[string]bool{}
	for _, line := range cart.Lines() {
		if seen[line.Product.ID] {
			t.Fatalf("Duplicate line for product %s", line.Product.ID)
		}
		seen[line.Product.ID] = true
	}
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("p1", "Noodles", "2.50", 100), 2)

	if err := cart.SetQuantity("p1", 5); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cart.ItemCount() != 5 {
		t.Errorf("Expected item count 5, got %d", cart.ItemCount())
	}
}

func TestCart_SetQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("p1", "Noodles", "2.50", 100), 2)

	if err := cart.SetQuantity("p1", 0); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(cart.Lines()) != 0 {
		t.Errorf("Expected line removed, got %d lines", len(cart.Lines()))
	}
}

func TestCart_SetQuantity_NotFound(t *testing.T) {
	cart := NewCart()

	if err := cart.SetQuantity("missing", 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("p1", "Noodles", "2.50", 100), 2)

	if err := cart.RemoveItem("p1"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(cart.Lines()) != 0 {
		t.Errorf("Expected empty cart, got %d lines", len(cart.Lines()))
	}
}

func TestCart_Total(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("p1", "Noodles", "2.50", 100), 2)
	cart.AddItem(testProduct("p2", "Hot Sauce", "1.99", 75), 1)

	want := decimal.RequireFromString("6.99")
	if !cart.Total().Equal(want) {
		t.Errorf("Expected total %s, got %s", want, cart.Total())
	}
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("p1", "Noodles", "2.50", 100), 2)
	cart.AddItem(testProduct("p2", "Burger", "5.99", 30), 1)

	cart.Clear()

	if cart.ItemCount() != 0 {
		t.Errorf("Expected item count 0, got %d", cart.ItemCount())
	}
	if !cart.Total().IsZero() {
		t.Errorf("Expected zero total, got %s", cart.Total())
	}
}
