package models

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryNoodles Category = "noodles"
	CategoryBurger  Category = "burger"
	CategorySauce   Category = "sauce"
	CategoryOther   Category = "other"
)

// Valid reports whether c is one of the known menu categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNoodles, CategoryBurger, CategorySauce, CategoryOther:
		return true
	}
	return false
}

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Image    string          `json:"image,omitempty"`
}
