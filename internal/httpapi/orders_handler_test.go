package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/domain"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/store"
)

func newOrdersFixture(t *testing.T) (*OrdersHandler, *store.MemoryCarts, *store.MemoryOrders) {
	t.Helper()
	products := store.SeedProducts()
	carts := store.NewMemoryCarts()
	orders := store.NewMemoryOrders(store.SeedOrders(products))
	return NewOrdersHandler(orders, carts, testLogger()), carts, orders
}

func TestPlaceOrder_SnapshotsAndClearsCart(t *testing.T) {
	sut, carts, orders := newOrdersFixture(t)
	p := store.SeedProducts()[0]
	carts.AddItem("s1", p)
	carts.AddItem("s1", p)

	rec := httptest.NewRecorder()
	sut.Place(rec, newSessionRequest(http.MethodPost, "/api/v1/orders", `{"customer_name":"Пётр Иванов"}`, "s1"))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp OrderResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, int64(3), resp.Order.ID)
	assert.Equal(t, domain.OrderStatusPending, resp.Order.Status)
	assert.Equal(t, 2580.0, resp.Order.Total)
	assert.Equal(t, "Заказ оформлен", resp.Notice.Title)

	assert.Empty(t, carts.Get("s1").Items)
	assert.Equal(t, 3, len(orders.List()))
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	sut, _, orders := newOrdersFixture(t)

	rec := httptest.NewRecorder()
	sut.Place(rec, newSessionRequest(http.MethodPost, "/api/v1/orders", `{"customer_name":"Пётр Иванов"}`, "s1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 2, len(orders.List()))
}

func TestPlaceOrder_MissingCustomerName(t *testing.T) {
	sut, carts, _ := newOrdersFixture(t)
	carts.AddItem("s1", store.SeedProducts()[0])

	rec := httptest.NewRecorder()
	sut.Place(rec, newSessionRequest(http.MethodPost, "/api/v1/orders", `{}`, "s1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, len(carts.Get("s1").Items), "cart must be untouched")
}

func TestListOrders(t *testing.T) {
	sut, _, _ := newOrdersFixture(t)

	rec := httptest.NewRecorder()
	sut.List(rec, newSessionRequest(http.MethodGet, "/api/v1/admin/orders", "", "s1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp OrdersResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, 2, len(resp.Orders))
	assert.Equal(t, "Иван Петров", resp.Orders[0].CustomerName)
}

func TestUpdateOrderStatus_Accept(t *testing.T) {
	sut, _, orders := newOrdersFixture(t)

	rec := httptest.NewRecorder()
	r := newSessionRequest(http.MethodPut, "/api/v1/admin/orders/1/status", `{"status":"accepted"}`, "s1")
	sut.UpdateStatus(rec, withURLParam(r, "order_id", "1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp OrderResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.OrderStatusAccepted, resp.Order.Status)
	assert.Equal(t, "Заказ принят", resp.Notice.Title)

	// only the target order changed
	assert.Equal(t, domain.OrderStatusPending, orders.List()[1].Status)
}

func TestUpdateOrderStatus_Reject(t *testing.T) {
	sut, _, _ := newOrdersFixture(t)

	rec := httptest.NewRecorder()
	r := newSessionRequest(http.MethodPut, "/api/v1/admin/orders/2/status", `{"status":"rejected"}`, "s1")
	sut.UpdateStatus(rec, withURLParam(r, "order_id", "2"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp OrderResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Заказ отклонен", resp.Notice.Title)
}

func TestUpdateOrderStatus_AlreadyDecided(t *testing.T) {
	sut, _, orders := newOrdersFixture(t)
	_, _, err := orders.UpdateStatus(1, domain.OrderStatusAccepted)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r := newSessionRequest(http.MethodPut, "/api/v1/admin/orders/1/status", `{"status":"rejected"}`, "s1")
	sut.UpdateStatus(rec, withURLParam(r, "order_id", "1"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.OrderStatusAccepted, orders.List()[0].Status)
}

func TestUpdateOrderStatus_UnknownOrderIsNoop(t *testing.T) {
	sut, _, orders := newOrdersFixture(t)

	rec := httptest.NewRecorder()
	r := newSessionRequest(http.MethodPut, "/api/v1/admin/orders/42/status", `{"status":"accepted"}`, "s1")
	sut.UpdateStatus(rec, withURLParam(r, "order_id", "42"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, len(orders.List()))
}

func TestUpdateOrderStatus_InvalidTarget(t *testing.T) {
	sut, _, _ := newOrdersFixture(t)

	for _, status := range []string{"pending", "shipped", ""} {
		rec := httptest.NewRecorder()
		r := newSessionRequest(http.MethodPut, "/api/v1/admin/orders/1/status", `{"status":"`+status+`"}`, "s1")
		sut.UpdateStatus(rec, withURLParam(r, "order_id", "1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "status %q must be rejected", status)
	}
}
