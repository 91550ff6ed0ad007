// Package checkout implements the cart -> bill -> inventory transaction.
// It is the only place the three stores interact.
package checkout

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/store"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no lines in
	// the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCustomerName is returned when the customer name is missing.
	ErrCustomerName = errors.New("customer name is required")
)

// Service composes the three stores into the checkout workflow.
type Service struct {
	mu        sync.Mutex
	inventory *store.Inventory
	cart      *store.Cart
	bills     *store.Bills
}

func NewService(inventory *store.Inventory, cart *store.Cart, bills *store.Bills) *Service {
	return &Service{
		inventory: inventory,
		cart:      cart,
		bills:     bills,
	}
}

// Checkout converts the current cart into a pending bill, decrements
// inventory stock for every line sold, and empties the cart. The service
// mutex keeps two checkouts from interleaving; individual store operations
// are already safe on their own.
//
// Stock is adjusted per line with no atomicity across lines: a line whose
// product has since been removed from inventory is skipped, because the cart
// holds a snapshot and the bill stays valid regardless.
func (s *Service) Checkout(info models.CustomerInfo) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(info.Name) == "" {
		return models.Bill{}, ErrCustomerName
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return models.Bill{}, ErrEmptyCart
	}

	// Total comes from the captured lines, not the live cart, so Items and
	// Total cannot drift apart if the cart changes under us.
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}

	bill := models.Bill{
		ID:              s.bills.NextID(),
		Items:           lines,
		Total:           total,
		Status:          models.PaymentPending,
		CustomerName:    info.Name,
		CustomerPhone:   strings.TrimSpace(info.Phone),
		Date:            time.Now(),
		DeliveryAddress: strings.TrimSpace(info.Address),
	}

	if err := s.bills.Add(bill); err != nil {
		return models.Bill{}, fmt.Errorf("record bill %s: %w", bill.ID, err)
	}

	for _, line := range lines {
		if err := s.inventory.AdjustStock(line.Product.ID, line.Quantity); err != nil {
			// The sold snapshot is already on the bill; a product pulled
			// from the catalog mid-sale only loses its stock adjustment.
			log.Printf("checkout %s: stock not adjusted for product %s: %v", bill.ID, line.Product.ID, err)
		}
	}

	s.cart.Clear()
	return bill, nil
}
