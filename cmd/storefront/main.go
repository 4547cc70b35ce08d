package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/httpapi"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/logging"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/session"
	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/store"
)

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration
	CleanupInterval time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		SessionTTL:      getDurationEnv("SESSION_TTL", session.DefaultTTL),
		CleanupInterval: session.DefaultCleanupInterval,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	log := logging.New()

	// All state is in-memory and lives for the lifetime of the
	// process; nothing is persisted.
	products := store.SeedProducts()
	catalog := store.NewMemoryCatalog(products)
	carts := store.NewMemoryCarts()
	orders := store.NewMemoryOrders(store.SeedOrders(products))

	sessions := session.NewManager(cfg.SessionTTL, cfg.CleanupInterval)
	sessions.SetOnExpire(func(sessionID string) {
		carts.Clear(sessionID)
		log.Info("session expired", "session_id", sessionID)
	})
	defer sessions.Close()

	router := httpapi.NewRouter(httpapi.Deps{
		Catalog:        catalog,
		Carts:          carts,
		Orders:         orders,
		Sessions:       sessions,
		Log:            log,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("storefront starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server exited")
}
