package store

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
)

func testBill(id string, status models.PaymentStatus) models.Bill {
	return models.Bill{
		ID:           id,
		Items:        []models.CartLine{{Product: testProduct("p1", "Noodles", "2.50", 100), Quantity: 2}},
		Total:        decimal.RequireFromString("5.00"),
		Status:       status,
		CustomerName: "John Smith",
		Date:         time.Now(),
	}
}

func TestBills_NextID_Sequence(t *testing.T) {
	bills := NewBills()

	if id := bills.NextID(); id != "B001" {
		t.Errorf("Expected B001, got %s", id)
	}

	ids := map[string]bool{}
	for i := 0; i < 5; i++ {
		id := bills.NextID()
		if ids[id] {
			t.Fatalf("Duplicate generated id %s", id)
		}
		ids[id] = true
		bills.Add(testBill(id, models.PaymentPending))
	}

	if id := bills.NextID(); id != "B006" {
		t.Errorf("Expected B006, got %s", id)
	}
}

func TestBills_UpdateStatus(t *testing.T) {
	bills := NewBills()
	bills.Add(testBill("B001", models.PaymentPending))

	if err := bills.UpdateStatus("B001", models.PaymentPaid); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	b, _ := bills.ByID("B001")
	if b.Status != models.PaymentPaid {
		t.Errorf("Expected paid, got %s", b.Status)
	}
}

func TestBills_UpdateStatus_PaidIsTerminal(t *testing.T) {
	bills := NewBills()
	bills.Add(testBill("B001", models.PaymentPending))
	bills.UpdateStatus("B001", models.PaymentPaid)

	err := bills.UpdateStatus("B001", models.PaymentPending)
	if !errors.Is(err, ErrStatusFinal) {
		t.Errorf("Expected ErrStatusFinal, got: %v", err)
	}

	b, _ := bills.ByID("B001")
	if b.Status != models.PaymentPaid {
		t.Errorf("Expected status to stay paid, got %s", b.Status)
	}
}

func TestBills_UpdateStatus_NotFound(t *testing.T) {
	bills := NewBills()

	if err := bills.UpdateStatus("missing", models.PaymentPaid); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

func TestBills_ByStatus_PreservesOrder(t *testing.T) {
	bills := NewBills()
	bills.Add(testBill("B001", models.PaymentPaid))
	bills.Add(testBill("B002", models.PaymentPending))
	bills.Add(testBill("B003", models.PaymentPending))

	pending := bills.ByStatus(models.PaymentPending)
	if len(pending) != 2 {
		t.Fatalf("Expected 2 pending bills, got %d", len(pending))
	}
	if pending[0].ID != "B002" || pending[1].ID != "B003" {
		t.Errorf("Expected [B002 B003], got [%s %s]", pending[0].ID, pending[1].ID)
	}

	paid := bills.ByStatus(models.PaymentPaid)
	if len(paid) != 1 || paid[0].ID != "B001" {
		t.Errorf("Expected single paid bill B001, got %v", paid)
	}
}
