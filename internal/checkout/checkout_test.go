package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/store"
)

type CheckoutTestSuite struct {
	suite.Suite
	inventory *store.Inventory
	cart      *store.Cart
	bills     *store.Bills
	service   *Service
}

func (s *CheckoutTestSuite) SetupTest() {
	s.inventory = store.NewInventory()
	s.cart = store.NewCart()
	s.bills = store.NewBills()
	s.service = NewService(s.inventory, s.cart, s.bills)

	s.inventory.AddProduct(models.Product{
		ID: "pA", Name: "Instant Noodles", Category: models.CategoryNoodles,
		Price: decimal.RequireFromString("2.50"), Stock: 100,
	})
	s.inventory.AddProduct(models.Product{
		ID: "pB", Name: "Hot Sauce", Category: models.CategorySauce,
		Price: decimal.RequireFromString("1.99"), Stock: 75,
	})
}

func (s *CheckoutTestSuite) addToCart(id string, qty int) {
	product, err := s.inventory.ByID(id)
	s.Require().NoError(err)
	s.Require().NoError(s.cart.AddItem(product, qty))
}

func (s *CheckoutTestSuite) TestSuccessfulCheckout() {
	s.addToCart("pA", 2)
	s.addToCart("pB", 1)

	bill, err := s.service.Checkout(models.CustomerInfo{Name: "John Smith"})
	s.NoError(err)

	s.Equal("B001", bill.ID)
	s.True(bill.Total.Equal(decimal.RequireFromString("6.99")), "total was %s", bill.Total)
	s.Equal(models.PaymentPending, bill.Status)
	s.Equal("John Smith", bill.CustomerName)
	s.Len(bill.Items, 2)

	pA, _ := s.inventory.ByID("pA")
	pB, _ := s.inventory.ByID("pB")
	s.Equal(98, pA.Stock)
	s.Equal(74, pB.Stock)

	s.Equal(0, s.cart.ItemCount())
	s.Equal(1, s.bills.Count())
}

func (s *CheckoutTestSuite) TestBillTotalMatchesCartTotal() {
	s.addToCart("pA", 3)
	preTotal := s.cart.Total()

	bill, err := s.service.Checkout(models.CustomerInfo{Name: "Sarah Johnson"})
	s.NoError(err)
	s.True(bill.Total.Equal(preTotal))
}

func (s *CheckoutTestSuite) TestBillTotalDerivedFromBilledItems() {
	s.addToCart("pA", 2)
	s.addToCart("pB", 3)

	bill, err := s.service.Checkout(models.CustomerInfo{Name: "John Smith"})
	s.Require().NoError(err)

	// The total must agree with the items on the bill itself, so the two
	// cannot drift apart however the cart moves around the checkout.
	fromItems := decimal.Zero
	for _, item := range bill.Items {
		fromItems = fromItems.Add(item.Subtotal())
	}
	s.True(bill.Total.Equal(fromItems), "total %s, items sum to %s", bill.Total, fromItems)
	s.True(bill.Total.Equal(decimal.RequireFromString("10.97")))
}

func (s *CheckoutTestSuite) TestTotalFrozenAfterPriceChange() {
	s.addToCart("pA", 2)

	bill, err := s.service.Checkout(models.CustomerInfo{Name: "John Smith"})
	s.Require().NoError(err)

	// Reprice the product; the recorded bill must not move.
	pA, _ := s.inventory.ByID("pA")
	pA.Price = decimal.RequireFromString("9.99")
	s.Require().NoError(s.inventory.UpdateProduct(pA))

	recorded, err := s.bills.ByID(bill.ID)
	s.NoError(err)
	s.True(recorded.Total.Equal(decimal.RequireFromString("5.00")))
	s.True(recorded.Items[0].Product.Price.Equal(decimal.RequireFromString("2.50")))
}

func (s *CheckoutTestSuite) TestEmptyCartRejected() {
	_, err := s.service.Checkout(models.CustomerInfo{Name: "John Smith"})
	s.ErrorIs(err, ErrEmptyCart)
	s.Equal(0, s.bills.Count())
}

func (s *CheckoutTestSuite) TestMissingCustomerNameRejected() {
	s.addToCart("pA", 1)

	_, err := s.service.Checkout(models.CustomerInfo{Name: "   "})
	s.ErrorIs(err, ErrCustomerName)

	// Nothing happened: cart intact, no bill, stock untouched.
	s.Equal(1, s.cart.ItemCount())
	s.Equal(0, s.bills.Count())
	pA, _ := s.inventory.ByID("pA")
	s.Equal(100, pA.Stock)
}

func (s *CheckoutTestSuite) TestOptionalFieldsNormalized() {
	s.addToCart("pA", 1)

	bill, err := s.service.Checkout(models.CustomerInfo{
		Name:    "Michael Brown",
		Phone:   "  ",
		Address: "",
	})
	s.NoError(err)
	s.Empty(bill.CustomerPhone)
	s.Empty(bill.DeliveryAddress)
}

func (s *CheckoutTestSuite) TestProductRemovedMidSale() {
	s.addToCart("pA", 2)
	s.addToCart("pB", 1)
	s.Require().NoError(s.inventory.RemoveProduct("pA"))

	bill, err := s.service.Checkout(models.CustomerInfo{Name: "John Smith"})
	s.NoError(err)

	// The bill keeps the snapshot of the removed product; the surviving
	// product still gets its stock adjusted.
	s.Len(bill.Items, 2)
	pB, _ := s.inventory.ByID("pB")
	s.Equal(74, pB.Stock)
}

func (s *CheckoutTestSuite) TestSequentialBillIDsUnique() {
	ids := map[string]bool{}
	for i := 0; i < 4; i++ {
		s.addToCart("pA", 1)
		bill, err := s.service.Checkout(models.CustomerInfo{Name: "John Smith"})
		s.Require().NoError(err)
		s.False(ids[bill.ID], "duplicate bill id %s", bill.ID)
		ids[bill.ID] = true
	}
	s.Equal("B005", s.bills.NextID())
}

func TestCheckoutTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}
