package domain

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusAccepted OrderStatus = "accepted"
	OrderStatusRejected OrderStatus = "rejected"
)

// IsTerminal reports whether the status is a final decision. A
// decided order never transitions again.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusAccepted || s == OrderStatusRejected
}

// IsDecision reports whether the status is a valid target for an
// admin decision on a pending order.
func (s OrderStatus) IsDecision() bool {
	return s == OrderStatusAccepted || s == OrderStatusRejected
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

// Order is a placed order. Items are CartItem snapshots and Total is
// fixed at creation time; neither is recomputed when the catalog
// changes afterwards.
type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customer_name"`
	Items        []CartItem  `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Date         string      `json:"date"`
}
