package models

// CartItem represents a single line in the cart.
type CartItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price" validate:"gte=0"` // unit price in major currency units
	Img   string  `json:"img,omitempty"`
	Qty   int     `json:"qty"`
}

// Cart is an ordered sequence of line items. Ordering is insertion order,
// and the whole cart is persisted as one value (read-modify-write).
type Cart []CartItem

// FindIndex returns the position of the item with the given id, or -1.
func (c Cart) FindIndex(id string) int {
	for i, item := range c {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Total returns the exact sum of price * qty across all entries.
// No rounding happens here; display rounding is a presentation concern.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += item.Price * float64(item.Qty)
	}
	return total
}

// ItemCount returns the sum of quantities across all entries.
func (c Cart) ItemCount() int {
	var count int
	for _, item := range c {
		count += item.Qty
	}
	return count
}
