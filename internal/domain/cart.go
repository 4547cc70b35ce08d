package domain

import "time"

type Cart struct {
	SessionID string     `json:"-"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem holds a full Product value, not a catalog reference, so a
// line item (and any order snapshot made from it) is frozen at the
// moment it was added. Deleting the product from the catalog does not
// reach back into carts or existing orders.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// TotalPrice sums price*quantity over all line items. Recomputed on
// every call, never cached.
func (c *Cart) TotalPrice() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}

// ItemCount sums the quantities of all line items.
func (c *Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
