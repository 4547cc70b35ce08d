package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/domain"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/store"
)

type CatalogHandler struct {
	catalog store.Catalog
	log     *slog.Logger
}

func NewCatalogHandler(catalog store.Catalog, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		log:     log,
	}
}

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
}

type ProductCreatedResponse struct {
	Product domain.Product `json:"product"`
	Notice  Notice         `json:"notice"`
}

// GET /api/v1/products
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &ProductsResponse{Products: h.catalog.List()})
}

// GET /api/v1/products/{product_id}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	product, err := h.catalog.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// POST /api/v1/admin/products
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft domain.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, err := h.catalog.Add(draft)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			// Recoverable: the catalog is unchanged and the form keeps
			// its values on the client side.
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   "заполните все обязательные поля",
				Code:    "validation_failed",
				Details: verr.Error(),
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.log.Info("product added", "product_id", product.ID, "name", product.Name)
	respondJSON(w, http.StatusCreated, &ProductCreatedResponse{
		Product: product,
		Notice: Notice{
			Title:       "Товар добавлен",
			Description: "Новый товар успешно добавлен в каталог",
		},
	})
}

// DELETE /api/v1/admin/products/{product_id}
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	// Unconditional: no check against carts or order snapshots, they
	// hold frozen product values.
	h.catalog.Delete(id)
	h.log.Info("product deleted", "product_id", id)
	respondJSON(w, http.StatusOK, map[string]Notice{"notice": {
		Title:       "Товар удален",
		Description: "Товар успешно удален из каталога",
	}})
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "product_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return 0, false
	}
	return id, true
}
