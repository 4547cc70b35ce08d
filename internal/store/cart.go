package store

import (
	"sync"
	"time"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/domain"
)

// MemoryCarts implements Carts with in-memory storage keyed by
// session id. All methods return a copy of the cart so callers never
// observe concurrent mutation.
type MemoryCarts struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewMemoryCarts() *MemoryCarts {
	return &MemoryCarts{
		carts: make(map[string]*domain.Cart),
	}
}

// Get returns the session's cart. An unknown session gets an empty
// cart rather than an error.
func (s *MemoryCarts) Get(sessionID string) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return domain.Cart{
			SessionID: sessionID,
			Items:     []domain.CartItem{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}
	return copyCart(cart)
}

func (s *MemoryCarts) AddItem(sessionID string, product domain.Product) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.ensureLocked(sessionID)
	for i := range cart.Items {
		if cart.Items[i].Product.ID == product.ID {
			cart.Items[i].Quantity++
			cart.UpdatedAt = time.Now()
			return copyCart(cart)
		}
	}
	cart.Items = append(cart.Items, domain.CartItem{Product: product, Quantity: 1})
	cart.UpdatedAt = time.Now()
	return copyCart(cart)
}

// SetQuantity replaces a line item's quantity. A quantity below 1
// removes the line item; a quantity of 0 is never stored.
func (s *MemoryCarts) SetQuantity(sessionID string, productID int64, quantity int) domain.Cart {
	if quantity < 1 {
		return s.RemoveItem(sessionID, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.ensureLocked(sessionID)
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity = quantity
			cart.UpdatedAt = time.Now()
			break
		}
	}
	return copyCart(cart)
}

// RemoveItem deletes the line item if present; removing an absent
// item is a no-op, not an error.
func (s *MemoryCarts) RemoveItem(sessionID string, productID int64) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.ensureLocked(sessionID)
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.UpdatedAt = time.Now()
			break
		}
	}
	return copyCart(cart)
}

func (s *MemoryCarts) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// ensureLocked returns the session's cart, creating it if needed.
// Callers must hold the write lock.
func (s *MemoryCarts) ensureLocked(sessionID string) *domain.Cart {
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &domain.Cart{
			SessionID: sessionID,
			Items:     []domain.CartItem{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		s.carts[sessionID] = cart
	}
	return cart
}

func copyCart(cart *domain.Cart) domain.Cart {
	out := *cart
	out.Items = make([]domain.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return out
}
