package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSessionRequest builds a request carrying the given session id,
// the way SessionMiddleware would.
func newSessionRequest(method, target, body, sessionID string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
	return r.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request, needed
// when calling handlers without a router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) CartResponseDTO {
	t.Helper()
	var resp CartResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCartAddItem_Success(t *testing.T) {
	catalog := store.NewMemoryCatalog(store.SeedProducts())
	carts := store.NewMemoryCarts()
	sut := NewCartHandler(carts, catalog, testLogger())

	rec := httptest.NewRecorder()
	sut.AddItem(rec, newSessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`, "s1"))

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeCart(t, rec)
	require.Equal(t, 1, len(resp.Items))
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.Equal(t, 1290.0, resp.TotalPrice)
	assert.Equal(t, 1, resp.ItemCount)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Добавлено в корзину", resp.Notice.Title)
}

func TestCartAddItem_TwiceIncrementsQuantity(t *testing.T) {
	catalog := store.NewMemoryCatalog(store.SeedProducts())
	carts := store.NewMemoryCarts()
	sut := NewCartHandler(carts, catalog, testLogger())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		sut.AddItem(rec, newSessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`, "s1"))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	cart := carts.Get("s1")
	require.Equal(t, 1, len(cart.Items))
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 2580.0, cart.TotalPrice())
}

func TestCartAddItem_UnknownProduct(t *testing.T) {
	catalog := store.NewMemoryCatalog(store.SeedProducts())
	carts := store.NewMemoryCarts()
	sut := NewCartHandler(carts, catalog, testLogger())

	rec := httptest.NewRecorder()
	sut.AddItem(rec, newSessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":42}`, "s1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, carts.Get("s1").Items)
}

func TestCartAddItem_BadInput(t *testing.T) {
	sut := NewCartHandler(store.NewMemoryCarts(), store.NewMemoryCatalog(nil), testLogger())

	rec := httptest.NewRecorder()
	sut.AddItem(rec, newSessionRequest(http.MethodPost, "/api/v1/cart/items", `not json`, "s1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	sut.AddItem(rec, newSessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":-1}`, "s1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartSetQuantity_ZeroRemovesLine(t *testing.T) {
	catalog := store.NewMemoryCatalog(store.SeedProducts())
	carts := store.NewMemoryCarts()
	p, err := catalog.Get(1)
	require.NoError(t, err)
	carts.AddItem("s1", p)

	sut := NewCartHandler(carts, catalog, testLogger())

	rec := httptest.NewRecorder()
	r := newSessionRequest(http.MethodPut, "/api/v1/cart/items/1", `{"quantity":0}`, "s1")
	sut.SetQuantity(rec, withURLParam(r, "product_id", "1"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCart(t, rec)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.TotalPrice)
}

func TestCartSetQuantity_Replace(t *testing.T) {
	catalog := store.NewMemoryCatalog(store.SeedProducts())
	carts := store.NewMemoryCarts()
	p, err := catalog.Get(1)
	require.NoError(t, err)
	carts.AddItem("s1", p)
	carts.AddItem("s1", p)

	sut := NewCartHandler(carts, catalog, testLogger())

	rec := httptest.NewRecorder()
	r := newSessionRequest(http.MethodPut, "/api/v1/cart/items/1", `{"quantity":1}`, "s1")
	sut.SetQuantity(rec, withURLParam(r, "product_id", "1"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCart(t, rec)
	require.Equal(t, 1, len(resp.Items))
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.Equal(t, 1290.0, resp.TotalPrice)
}

func TestCartRemoveItem(t *testing.T) {
	catalog := store.NewMemoryCatalog(store.SeedProducts())
	carts := store.NewMemoryCarts()
	p, err := catalog.Get(1)
	require.NoError(t, err)
	carts.AddItem("s1", p)

	sut := NewCartHandler(carts, catalog, testLogger())

	rec := httptest.NewRecorder()
	r := newSessionRequest(http.MethodDelete, "/api/v1/cart/items/1", "", "s1")
	sut.RemoveItem(rec, withURLParam(r, "product_id", "1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, rec).Items)
}

func TestCartGet_Empty(t *testing.T) {
	sut := NewCartHandler(store.NewMemoryCarts(), store.NewMemoryCatalog(nil), testLogger())

	rec := httptest.NewRecorder()
	sut.Get(rec, newSessionRequest(http.MethodGet, "/api/v1/cart", "", "s1"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCart(t, rec)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.ItemCount)
	assert.Nil(t, resp.Notice)
}
