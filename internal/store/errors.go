package store

import "errors"

var (
	// ErrNotFound is returned when an operation targets an id that is not
	// present in the store.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when adding a product whose id is already
	// in the catalog.
	ErrDuplicateID = errors.New("duplicate product id")

	// ErrInvalidQuantity is returned when a cart line would be created with
	// a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrStatusFinal is returned when changing the status of a bill that has
	// already been paid. Paid is terminal.
	ErrStatusFinal = errors.New("bill is already paid")
)
