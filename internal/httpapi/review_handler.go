package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/domain"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/store"
)

type ReviewHandler struct {
	catalog store.Catalog
	log     *slog.Logger
}

func NewReviewHandler(catalog store.Catalog, log *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		catalog: catalog,
		log:     log,
	}
}

type SubmitReviewRequestDTO struct {
	Author string `json:"author,omitempty"`
	Rating *int   `json:"rating,omitempty"`
	Text   string `json:"text"`
}

// POST /api/v1/products/{product_id}/reviews
//
// Accepts the review, thanks the user and discards it. The product's
// review list is never appended to; the copy promises moderation but
// no moderation queue exists. Observed behavior, kept on purpose.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	if _, err := h.catalog.Get(id); err != nil {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	var req SubmitReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	rating := 5
	if req.Rating != nil {
		rating = domain.ClampRating(*req.Rating)
	}

	h.log.Info("review submitted", "product_id", id, "rating", rating)

	respondJSON(w, http.StatusAccepted, map[string]Notice{"notice": {
		Title:       "Спасибо за отзыв!",
		Description: "Ваш отзыв будет опубликован после модерации",
	}})
}
