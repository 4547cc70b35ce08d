package store

import (
	"sync"
	"time"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/domain"
)

// orderDateLayout matches the display format of the seed data.
const orderDateLayout = "02.01.2006"

// MemoryOrders implements Orders with in-memory storage.
type MemoryOrders struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewMemoryOrders(seed []domain.Order) *MemoryOrders {
	s := &MemoryOrders{
		orders: make([]domain.Order, 0, len(seed)),
	}
	s.orders = append(s.orders, seed...)
	return s
}

func (s *MemoryOrders) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Place creates a pending order from the given cart item snapshots.
// The total is computed here, once, and stays fixed even if catalog
// prices change later.
func (s *MemoryOrders) Place(customerName string, items []domain.CartItem) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)

	var total float64
	for _, item := range snapshot {
		total += item.Product.Price * float64(item.Quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, o := range s.orders {
		if o.ID > maxID {
			maxID = o.ID
		}
	}

	order := domain.Order{
		ID:           maxID + 1,
		CustomerName: customerName,
		Items:        snapshot,
		Total:        total,
		Status:       domain.OrderStatusPending,
		Date:         time.Now().Format(orderDateLayout),
	}
	s.orders = append(s.orders, order)
	return order, nil
}

// UpdateStatus moves a pending order to accepted or rejected. Both
// target states are terminal: deciding an already-decided order
// returns ErrOrderDecided. An unknown id reports found=false and no
// error; nothing else is touched in either case.
func (s *MemoryOrders) UpdateStatus(id int64, status domain.OrderStatus) (domain.Order, bool, error) {
	if !status.IsDecision() {
		return domain.Order{}, false, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if s.orders[i].Status.IsTerminal() {
			return s.orders[i], true, ErrOrderDecided
		}
		s.orders[i].Status = status
		return s.orders[i], true, nil
	}
	return domain.Order{}, false, nil
}
