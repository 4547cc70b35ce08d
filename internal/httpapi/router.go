package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/session"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/store"
)

// Deps bundles everything the router needs.
type Deps struct {
	Catalog  store.Catalog
	Carts    store.Carts
	Orders   store.Orders
	Sessions *session.Manager
	Log      *slog.Logger

	RequestTimeout time.Duration
}

// NewRouter wires all handlers behind the global middleware chain and
// returns the ready-to-serve handler.
func NewRouter(deps Deps) http.Handler {
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Log)
	cartHandler := NewCartHandler(deps.Carts, deps.Catalog, deps.Log)
	ordersHandler := NewOrdersHandler(deps.Orders, deps.Carts, deps.Log)
	reviewHandler := NewReviewHandler(deps.Catalog, deps.Log)
	adminHandler := NewAdminHandler(deps.Sessions, deps.Log)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware(deps.Sessions))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogHandler.List)
			r.Get("/{product_id}", catalogHandler.Get)
			r.Post("/{product_id}/reviews", reviewHandler.Submit)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.SetQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Post("/orders", ordersHandler.Place)
		r.Post("/logo/clicks", adminHandler.LogoClick)

		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireAdmin(deps.Sessions))
			r.Get("/orders", ordersHandler.List)
			r.Put("/orders/{order_id}/status", ordersHandler.UpdateStatus)
			r.Post("/products", catalogHandler.Create)
			r.Delete("/products/{product_id}", catalogHandler.Delete)
			r.Post("/exit", adminHandler.Exit)
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}
