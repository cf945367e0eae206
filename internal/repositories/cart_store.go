package repositories

import (
	"dukaan/internal/models"
)

// CartStore persists the cart as a single value. Reads and writes cover the
// whole cart; there are no partial updates. A store that cannot read its
// backing data returns an empty cart rather than an error, so callers never
// see storage corruption.
type CartStore interface {
	Read() (models.Cart, error)
	Write(cart models.Cart) error
}
