package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// Bill is the record of a completed checkout. Items and Total are frozen at
// checkout time; Status is the only field that changes afterwards.
type Bill struct {
	ID              string          `json:"id"`
	Items           []CartLine      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          PaymentStatus   `json:"status"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	Date            time.Time       `json:"date"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
}
