package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/domain"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/store"
)

type OrdersHandler struct {
	orders store.Orders
	carts  store.Carts
	log    *slog.Logger
}

func NewOrdersHandler(orders store.Orders, carts store.Carts, log *slog.Logger) *OrdersHandler {
	return &OrdersHandler{
		orders: orders,
		carts:  carts,
		log:    log,
	}
}

type PlaceOrderRequestDTO struct {
	CustomerName string `json:"customer_name"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

type OrderResponseDTO struct {
	Order  domain.Order `json:"order"`
	Notice Notice       `json:"notice"`
}

type OrdersResponse struct {
	Orders []domain.Order `json:"orders"`
}

// POST /api/v1/orders
// Snapshots the session's current cart into a pending order and
// clears the cart.
func (h *OrdersHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.CustomerName == "" {
		respondError(w, http.StatusBadRequest, "missing_customer_name", "customer_name is required")
		return
	}

	sessionID := getSessionID(r.Context())
	cart := h.carts.Get(sessionID)

	order, err := h.orders.Place(req.CustomerName, cart.Items)
	if err != nil {
		if errors.Is(err, store.ErrEmptyOrder) {
			respondError(w, http.StatusBadRequest, "empty_cart", "cannot place an order with an empty cart")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.carts.Clear(sessionID)
	h.log.Info("order placed", "order_id", order.ID, "customer", order.CustomerName, "total", order.Total)

	respondJSON(w, http.StatusCreated, &OrderResponseDTO{
		Order: order,
		Notice: Notice{
			Title:       "Заказ оформлен",
			Description: fmt.Sprintf("Заказ #%d на сумму %.0f ₽ ожидает подтверждения", order.ID, order.Total),
		},
	})
}

// GET /api/v1/admin/orders
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &OrdersResponse{Orders: h.orders.List()})
}

// PUT /api/v1/admin/orders/{order_id}/status
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "order_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	status := domain.OrderStatus(req.Status)
	if !status.IsDecision() {
		respondError(w, http.StatusBadRequest, "invalid_status", "status must be accepted or rejected")
		return
	}

	order, found, err := h.orders.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, store.ErrOrderDecided) {
			respondError(w, http.StatusConflict, "order_decided", "order has already been decided")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	if !found {
		// Deciding an unknown order is a silent no-op.
		respondJSON(w, http.StatusOK, map[string]Notice{"notice": {
			Title: fmt.Sprintf("Заказ #%d не найден", id),
		}})
		return
	}

	h.log.Info("order status updated", "order_id", order.ID, "status", order.Status)

	notice := Notice{
		Title:       "Заказ отклонен",
		Description: fmt.Sprintf("Заказ #%d отклонен", order.ID),
	}
	if status == domain.OrderStatusAccepted {
		notice = Notice{
			Title:       "Заказ принят",
			Description: fmt.Sprintf("Заказ #%d принят в работу", order.ID),
		}
	}
	respondJSON(w, http.StatusOK, &OrderResponseDTO{Order: order, Notice: notice})
}
