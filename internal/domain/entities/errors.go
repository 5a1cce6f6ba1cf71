package entities

import "errors"

var (
	// ErrOutOfStock rejects adding a sold-out product to a cart.
	ErrOutOfStock = errors.New("product out of stock")
	// ErrItemNotFound is returned by cart mutations on an unknown line item.
	ErrItemNotFound = errors.New("cart item not found")
	// ErrEmptyCart rejects checking out a cart with no line items.
	ErrEmptyCart = errors.New("cart is empty")
)
