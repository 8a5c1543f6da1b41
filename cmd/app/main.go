package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atheriel/itemforge/internal/config"
	"github.com/atheriel/itemforge/internal/domain"
	"github.com/atheriel/itemforge/internal/effect"
	"github.com/atheriel/itemforge/internal/event"
	"github.com/atheriel/itemforge/internal/handler"
	"github.com/atheriel/itemforge/internal/item"
	"github.com/atheriel/itemforge/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	if err := effect.RegisterDefaults(); err != nil {
		slog.Error("Failed to register effects", "error", err)
		os.Exit(1)
	}

	loader := item.NewLoader()
	itemConfig, err := loader.Load(cfg.ItemsConfig)
	if err != nil {
		slog.Error("Failed to load item configuration", "error", err, "path", cfg.ItemsConfig)
		os.Exit(1)
	}
	if err := loader.Validate(itemConfig); err != nil {
		slog.Error("Invalid item configuration", "error", err, "path", cfg.ItemsConfig)
		os.Exit(1)
	}

	catalog := item.NewCatalog(domain.DefaultRegistry, cfg.CacheSize, cfg.CacheTTL)
	if err := catalog.Build(itemConfig); err != nil {
		slog.Error("Failed to build item catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Item catalog built", "items", catalog.Len(), "path", cfg.ItemsConfig)

	eventBus := event.NewMemoryBus()
	subscribeEventLogging(eventBus)

	srv := server.NewServer(cfg, catalog, loader, eventBus)

	// Run the server until interrupted, then drain in-flight requests.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			slog.Error("Shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}

// subscribeEventLogging logs domain events as they are published.
func subscribeEventLogging(bus event.Bus) {
	bus.Subscribe(event.EffectAttached, func(ctx context.Context, e event.Event) error {
		if payload, ok := e.Payload.(event.EffectAttachedPayloadV1); ok {
			slog.Info("Effect attached",
				"item", payload.ItemName,
				"category", payload.Category,
				"kind", payload.EffectKind,
				"existing", payload.Existing)
		}
		return nil
	})

	bus.Subscribe(event.CatalogReloaded, func(ctx context.Context, e event.Event) error {
		if payload, ok := e.Payload.(event.CatalogReloadedPayloadV1); ok {
			slog.Info("Catalog reloaded", "items", payload.ItemCount)
		}
		return nil
	})
}
