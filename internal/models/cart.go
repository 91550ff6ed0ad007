package models

import (
	"github.com/shopspring/decimal"
)

// CartLine pairs a product snapshot with a quantity. The embedded product is
// a copy taken when the line was added, not a live reference into inventory.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price * quantity for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CustomerInfo is the customer detail captured at checkout. Name is required;
// phone and address are optional.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}
