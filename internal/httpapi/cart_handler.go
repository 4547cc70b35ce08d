package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/domain"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/store"
)

type CartHandler struct {
	carts   store.Carts
	catalog store.Catalog
	log     *slog.Logger
}

func NewCartHandler(carts store.Carts, catalog store.Catalog, log *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: catalog,
		log:     log,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type SetQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Items      []domain.CartItem `json:"items"`
	TotalPrice float64           `json:"total_price"`
	ItemCount  int               `json:"item_count"`
	Notice     *Notice           `json:"notice,omitempty"`
}

func cartResponse(cart domain.Cart, notice *Notice) *CartResponseDTO {
	return &CartResponseDTO{
		Items:      cart.Items,
		TotalPrice: cart.TotalPrice(),
		ItemCount:  cart.ItemCount(),
		Notice:     notice,
	}
}

// GET /api/v1/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart := h.carts.Get(getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, cartResponse(cart, nil))
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	sessionID := getSessionID(r.Context())
	cart := h.carts.AddItem(sessionID, product)
	h.log.Info("item added to cart", "session_id", sessionID, "product_id", product.ID)

	respondJSON(w, http.StatusCreated, cartResponse(cart, &Notice{
		Title:       "Добавлено в корзину",
		Description: fmt.Sprintf("%s добавлен в корзину", product.Name),
	}))
}

// PUT /api/v1/cart/items/{product_id}
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req SetQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Quantities below 1 remove the line item; no upper bound.
	cart := h.carts.SetQuantity(getSessionID(r.Context()), id, req.Quantity)
	respondJSON(w, http.StatusOK, cartResponse(cart, nil))
}

// DELETE /api/v1/cart/items/{product_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	cart := h.carts.RemoveItem(getSessionID(r.Context()), id)
	respondJSON(w, http.StatusOK, cartResponse(cart, nil))
}
