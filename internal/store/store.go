package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/domain"
)

// Common errors returned by the stores
var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderDecided    = errors.New("order has already been decided")
	ErrInvalidStatus   = errors.New("invalid order status for this operation")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
)

// ValidationError reports required product fields that were left
// empty or zero. It is recoverable: the catalog stays unchanged and
// the caller surfaces the message to the user.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Catalog defines the interface for product catalog operations
type Catalog interface {
	// List returns all products in insertion order
	List() []domain.Product

	// Get returns the product with the given id
	Get(id int64) (domain.Product, error)

	// Add validates the draft and appends a new product with a fresh id
	// Returns a *ValidationError when name, price or image is missing
	Add(draft domain.ProductDraft) (domain.Product, error)

	// Delete removes the product unconditionally; deleting an unknown
	// id is not an error
	Delete(id int64)
}

// Carts defines the interface for per-session cart operations
type Carts interface {
	// Get returns the session's cart, or an empty cart when none exists
	Get(sessionID string) domain.Cart

	// AddItem merges the product into an existing line item (quantity+1)
	// or appends a new line item with quantity 1
	AddItem(sessionID string, product domain.Product) domain.Cart

	// SetQuantity replaces a line item's quantity; a quantity below 1
	// removes the line item entirely
	SetQuantity(sessionID string, productID int64, quantity int) domain.Cart

	// RemoveItem deletes the line item; removing an absent item is a no-op
	RemoveItem(sessionID string, productID int64) domain.Cart

	// Clear drops the session's cart
	Clear(sessionID string)
}

// Orders defines the interface for order operations
type Orders interface {
	// List returns all orders in insertion order
	List() []domain.Order

	// Place creates a pending order from cart item snapshots; the total
	// is computed once here and never recomputed
	Place(customerName string, items []domain.CartItem) (domain.Order, error)

	// UpdateStatus decides a pending order. Unknown ids are a silent
	// no-op (found=false). Decided orders return ErrOrderDecided.
	UpdateStatus(id int64, status domain.OrderStatus) (order domain.Order, found bool, err error)
}
