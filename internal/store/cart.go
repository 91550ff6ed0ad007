package store

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
)

type cartAction interface{ isCartAction() }

type addItem struct {
	product  models.Product
	quantity int
}
type removeItem struct{ id string }
type setQuantity struct {
	id       string
	quantity int
}
type clearCart struct{}

func (addItem) isCartAction()     {}
func (removeItem) isCartAction()  {}
func (setQuantity) isCartAction() {}
func (clearCart) isCartAction()   {}

// Cart owns the in-progress order. Lines are keyed by product id: adding a
// product that is already in the cart merges into the existing line instead
// of appending a second one.
type Cart struct {
	mu    sync.RWMutex
	lines []models.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (s *Cart) apply(a cartAction) error {
	switch a := a.(type) {
	case addItem:
		if a.quantity <= 0 {
			return fmt.Errorf("add %s: %w", a.product.ID, ErrInvalidQuantity)
		}
		if i := s.index(a.product.ID); i >= 0 {
			s.lines[i].Quantity += a.quantity
			return nil
		}
		s.lines = append(s.lines, models.CartLine{Product: a.product, Quantity: a.quantity})
		return nil
	case removeItem:
		i := s.index(a.id)
		if i < 0 {
			return fmt.Errorf("remove %s: %w", a.id, ErrNotFound)
		}
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
		return nil
	case setQuantity:
		if a.quantity <= 0 {
			return s.apply(removeItem{id: a.id})
		}
		i := s.index(a.id)
		if i < 0 {
			return fmt.Errorf("set quantity for %s: %w", a.id, ErrNotFound)
		}
		s.lines[i].Quantity = a.quantity
		return nil
	case clearCart:
		s.lines = nil
		return nil
	}
	return fmt.Errorf("unknown cart action %T", a)
}

func (s *Cart) index(productID string) int {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// AddItem puts quantity units of product into the cart, merging with an
// existing line for the same product id. The cart does not check available
// stock; callers gate on stock before adding.
func (s *Cart) AddItem(product models.Product, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(addItem{product: product, quantity: quantity})
}

// RemoveItem drops the line for the given product id.
func (s *Cart) RemoveItem(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(removeItem{id: productID})
}

// SetQuantity replaces the line's quantity. A quantity of zero or less
// removes the line.
func (s *Cart) SetQuantity(productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(setQuantity{id: productID, quantity: quantity})
}

// Clear empties the cart.
func (s *Cart) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.apply(clearCart{})
}

// Total returns the sum of price*quantity over all lines.
func (s *Cart) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (s *Cart) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Lines returns a copy of the cart contents.
func (s *Cart) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}
