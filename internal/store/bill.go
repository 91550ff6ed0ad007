package store

import (
	"fmt"
	"sync"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
)

type billAction interface{ isBillAction() }

type addBill struct{ bill models.Bill }
type updateStatus struct {
	id     string
	status models.PaymentStatus
}

func (addBill) isBillAction()      {}
func (updateStatus) isBillAction() {}

// Bills owns the record of completed checkouts. Bills are append-only; the
// only field that changes after creation is the payment status, and only in
// the pending -> paid direction.
type Bills struct {
	mu    sync.RWMutex
	bills []models.Bill
}

func NewBills() *Bills {
	return &Bills{}
}

func (s *Bills) apply(a billAction) error {
	switch a := a.(type) {
	case addBill:
		s.bills = append(s.bills, a.bill)
		return nil
	case updateStatus:
		for i := range s.bills {
			if s.bills[i].ID != a.id {
				continue
			}
			if s.bills[i].Status == models.PaymentPaid && a.status != models.PaymentPaid {
				return fmt.Errorf("bill %s: %w", a.id, ErrStatusFinal)
			}
			s.bills[i].Status = a.status
			return nil
		}
		return fmt.Errorf("bill %s: %w", a.id, ErrNotFound)
	}
	return fmt.Errorf("unknown bill action %T", a)
}

// Add appends a fully-formed bill. The caller is responsible for the id,
// items, total and date.
func (s *Bills) Add(b models.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(addBill{bill: b})
}

// UpdateStatus sets the bill's payment status. Paid is terminal: moving a
// paid bill back to pending fails with ErrStatusFinal.
func (s *Bills) UpdateStatus(id string, status models.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(updateStatus{id: id, status: status})
}

// ByID returns a copy of the bill with the given id.
func (s *Bills) ByID(id string) (models.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Bill{}, fmt.Errorf("bill %s: %w", id, ErrNotFound)
}

// ByStatus returns the bills with the given status, oldest first.
func (s *Bills) ByStatus(status models.PaymentStatus) []models.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Bill{}
	for _, b := range s.bills {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// All returns a copy of every bill, oldest first.
func (s *Bills) All() []models.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Bill, len(s.bills))
	copy(out, s.bills)
	return out
}

// Count returns the number of bills on record.
func (s *Bills) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bills)
}

// NextID generates the next bill number: "B" followed by a zero-padded
// 3-digit sequence derived from the current bill count. This is a sequence
// counter, not a hash; it stays unique only while bills are never removed.
func (s *Bills) NextID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("B%03d", len(s.bills)+1)
}
