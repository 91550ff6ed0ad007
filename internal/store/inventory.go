package store

import (
	"fmt"
	"sync"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
)

// inventoryAction is the tagged command set understood by the inventory
// reducer. Every mutation goes through apply so the catalog changes in
// exactly one place.
type inventoryAction interface{ isInventoryAction() }

type addProduct struct{ product models.Product }
type updateProduct struct{ product models.Product }
type removeProduct struct{ id string }
type adjustStock struct {
	id    string
	delta int
}

func (addProduct) isInventoryAction()    {}
func (updateProduct) isInventoryAction() {}
func (removeProduct) isInventoryAction() {}
func (adjustStock) isInventoryAction()   {}

// Inventory owns the product catalog. The catalog is an ordered slice so
// queries preserve insertion order.
type Inventory struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewInventory() *Inventory {
	return &Inventory{}
}

func (s *Inventory) apply(a inventoryAction) error {
	switch a := a.(type) {
	case addProduct:
		if s.index(a.product.ID) >= 0 {
			return fmt.Errorf("add product %s: %w", a.product.ID, ErrDuplicateID)
		}
		s.products = append(s.products, a.product)
		return nil
	case updateProduct:
		i := s.index(a.product.ID)
		if i < 0 {
			return fmt.Errorf("update product %s: %w", a.product.ID, ErrNotFound)
		}
		s.products[i] = a.product
		return nil
	case removeProduct:
		i := s.index(a.id)
		if i < 0 {
			return fmt.Errorf("remove product %s: %w", a.id, ErrNotFound)
		}
		s.products = append(s.products[:i], s.products[i+1:]...)
		return nil
	case adjustStock:
		i := s.index(a.id)
		if i < 0 {
			return fmt.Errorf("adjust stock for %s: %w", a.id, ErrNotFound)
		}
		// Delta is the quantity sold; stock may go negative when a sale
		// outruns the recorded count.
		s.products[i].Stock -= a.delta
		return nil
	}
	return fmt.Errorf("unknown inventory action %T", a)
}

// index returns the catalog position of id, or -1. Caller must hold the lock.
func (s *Inventory) index(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// AddProduct appends p to the catalog. Fails with ErrDuplicateID if a product
// with the same id already exists.
func (s *Inventory) AddProduct(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(addProduct{product: p})
}

// UpdateProduct replaces the product with p's id.
func (s *Inventory) UpdateProduct(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(updateProduct{product: p})
}

// RemoveProduct deletes the product with the given id.
func (s *Inventory) RemoveProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(removeProduct{id: id})
}

// AdjustStock decrements the product's stock by delta. A negative delta adds
// stock. No lower bound is enforced.
func (s *Inventory) AdjustStock(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(adjustStock{id: id, delta: delta})
}

// ByID returns a copy of the product with the given id.
func (s *Inventory) ByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return s.products[i], nil
}

// LowStock returns the products with stock below threshold, in catalog order.
func (s *Inventory) LowStock(threshold int) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	low := []models.Product{}
	for _, p := range s.products {
		if p.Stock < threshold {
			low = append(low, p)
		}
	}
	return low
}

// Products returns a copy of the catalog in insertion order.
func (s *Inventory) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}
