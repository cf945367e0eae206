package services

import "errors"

var (
	// ErrInvalidRequest marks missing or malformed caller input.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUpstream marks a failed gateway call. Wrapped errors carry detail
	// for logs; handlers must only surface a generic message.
	ErrUpstream = errors.New("gateway request failed")
	// ErrSignatureMismatch marks a supplied signature that disagrees with
	// the one computed from the shared secret.
	ErrSignatureMismatch = errors.New("invalid signature")
	// ErrEmptyCart marks a checkout attempted against an empty cart.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
	// ErrNoProduct marks markup from which no product could be extracted.
	ErrNoProduct = errors.New("no product data found in markup")
)
