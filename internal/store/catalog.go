package store

import (
	"sync"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/domain"
)

// DefaultCategory is applied when the admin form leaves the category
// field empty.
const DefaultCategory = "Новинка"

// MemoryCatalog implements Catalog with in-memory storage. Products
// keep their insertion order because the storefront renders them as a
// grid in that order.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewMemoryCatalog creates a catalog pre-filled with the given
// products.
func NewMemoryCatalog(seed []domain.Product) *MemoryCatalog {
	c := &MemoryCatalog{
		products: make([]domain.Product, 0, len(seed)),
	}
	c.products = append(c.products, seed...)
	return c
}

func (c *MemoryCatalog) List() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *MemoryCatalog) Get(id int64) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Add validates the draft and appends a new product. The id is
// max(existing ids)+1, so an id freed by a deletion can be handed out
// again; historical orders are unaffected because they hold product
// snapshots.
func (c *MemoryCatalog) Add(draft domain.ProductDraft) (domain.Product, error) {
	var missing []string
	if draft.Name == "" {
		missing = append(missing, "name")
	}
	if draft.Price <= 0 {
		missing = append(missing, "price")
	}
	if draft.Image == "" {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return domain.Product{}, &ValidationError{Missing: missing}
	}

	category := draft.Category
	if category == "" {
		category = DefaultCategory
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var maxID int64
	for _, p := range c.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	product := domain.Product{
		ID:          maxID + 1,
		Name:        draft.Name,
		Price:       draft.Price,
		Image:       draft.Image,
		Category:    category,
		Description: draft.Description,
		Reviews:     []domain.Review{},
	}
	c.products = append(c.products, product)
	return product, nil
}

// Delete removes the product unconditionally. Carts and orders that
// reference it keep their snapshots; there is no cascade.
func (c *MemoryCatalog) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return
		}
	}
}
