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

	"github.com/pharogames/itemforge/internal/builder"
	"github.com/pharogames/itemforge/internal/catalog"
	"github.com/pharogames/itemforge/internal/config"
	"github.com/pharogames/itemforge/internal/logger"
	"github.com/pharogames/itemforge/internal/placeholder"
	"github.com/pharogames/itemforge/internal/profile"
	"github.com/pharogames/itemforge/internal/registry"
	"github.com/pharogames/itemforge/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "itemsd",
		Version:     server.Version,
	})

	ctx := context.Background()

	store := registry.NewStore()
	b := builder.New(profileProvider(cfg), placeholder.NewMapResolver())
	service := catalog.NewService(store, b)

	if err := registerDefinitions(ctx, service, cfg.ItemsPath); err != nil {
		slog.Error("Failed to load item definitions", "path", cfg.ItemsPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Item definitions loaded", "path", cfg.ItemsPath, "count", store.Len())

	srv := server.NewServer(cfg.Port, service)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	slog.Info("Server stopped")
}

// registerDefinitions loads the YAML definitions file and registers every
// definition, failing on the first invalid entry.
func registerDefinitions(ctx context.Context, service catalog.Service, path string) error {
	defs, err := config.LoadItems(path)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := service.RegisterDefinition(ctx, def); err != nil {
			return err
		}
	}
	return nil
}

// profileProvider wires the owner profile source. Without a provider URL the
// builder skips owner resolution entirely.
func profileProvider(cfg *config.Config) profile.Provider {
	if cfg.ProfileProviderURL == "" {
		slog.Info("No profile provider configured, owner profiles disabled")
		return nil
	}
	upstream := profile.NewHTTPProvider(cfg.ProfileProviderURL, nil)
	return profile.NewCachedProvider(upstream, cfg.ProfileCacheSize, cfg.ProfileCacheTTL)
}
