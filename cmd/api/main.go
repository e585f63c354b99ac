// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/techvista/storefront/internal/config"
	"github.com/techvista/storefront/internal/domain/assistant"
	"github.com/techvista/storefront/internal/domain/cart"
	"github.com/techvista/storefront/internal/domain/catalog"
	"github.com/techvista/storefront/internal/domain/checkout"
	"github.com/techvista/storefront/internal/domain/order"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/infrastructure/storage"
	"github.com/techvista/storefront/internal/interfaces/http"
	"github.com/techvista/storefront/internal/interfaces/http/routes"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	logrus.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to the key-value store
	store, err := newStore(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore(store)

	// Wire the domain services. Session first; orders and checkout read the
	// current identity from it.
	sessionService := session.NewService(store)
	catalogService := catalog.NewService(catalog.SeedProducts())
	cartService := cart.NewService(store)
	orderService := order.NewService(store, sessionService)
	checkoutService := checkout.NewService(cfg, cartService, orderService, sessionService)
	assistantService := assistant.NewService(cfg)

	if cfg.Assistant.APIKey == "" {
		logrus.Warn("GEMINI_API_KEY is not set; assistant requests will fail")
	}

	logrus.Info("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, store, &routes.Services{
		Session:   sessionService,
		Catalog:   catalogService,
		Cart:      cartService,
		Order:     orderService,
		Checkout:  checkoutService,
		Assistant: assistantService,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logrus.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logrus.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logrus.Info("✅ Server shutdown completed")
}

// newStore selects the storage backend from configuration
func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case "redis":
		logrus.Infof("💾 Using Redis storage at %s", cfg.GetRedisAddr())
		return storage.NewRedisStore(cfg)
	default:
		logrus.Info("💾 Using in-memory storage (state is lost on restart)")
		return storage.NewMemoryStore(), nil
	}
}

func closeStore(store storage.Store) {
	if closer, ok := store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logrus.Errorf("Failed to close storage: %v", err)
		}
	}
}

// setupLogging configures logrus from the logging section
func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
