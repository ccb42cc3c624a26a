// Package internal contains core application functionality
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"

	"clarityboard/internal/config"
	"clarityboard/internal/logger"
	"clarityboard/internal/sessions"
	"clarityboard/internal/source"
)

// Application owns the configuration, the logger, the HTTP server, and
// the canonical dataset for one analysis session. The dataset is an
// immutable snapshot: handlers read whatever snapshot is current, and a
// reload swaps in a fresh one atomically.
type Application struct {
	Config *config.Config
	Logger *slog.Logger

	server *fiber.App

	mu      sync.RWMutex
	dataset *sessions.Dataset
}

// NewApp creates a new application instance with default settings.
func NewApp() (*Application, error) {
	return NewAppWithConfig(config.GetConfig())
}

// NewAppWithConfig creates a new application with the provided config.
func NewAppWithConfig(cfg *config.Config) (*Application, error) {
	if cfg.SourcePath == "" && cfg.SourceURL == "" {
		return nil, fmt.Errorf("no data source configured: set CLARITYBOARD_SOURCE_PATH or CLARITYBOARD_SOURCE_URL")
	}

	app := &Application{
		Config: cfg,
		Logger: logger.New(cfg),
	}
	app.server = NewRouter(app)
	return app, nil
}

// LoadDataset performs the one-time startup load of the canonical
// dataset. A source that is unreachable or yields zero usable rows is a
// fatal configuration error: the dashboard cannot render without data.
func (a *Application) LoadDataset(ctx context.Context) error {
	return a.Reload(ctx)
}

// Reload fetches the source feed, normalizes it, and swaps the dataset
// snapshot. On failure the previous snapshot, if any, stays in place.
func (a *Application) Reload(ctx context.Context) error {
	mapping, err := source.LoadColumnMapping(a.Config.ColumnMapPath)
	if err != nil {
		return fmt.Errorf("failed to load column mapping: %w", err)
	}

	var set sessions.RecordSet
	if a.Config.SourcePath != "" {
		set, err = source.FromFile(a.Config.SourcePath, mapping)
	} else {
		set, err = source.FromURL(ctx, a.Config.SourceURL, mapping)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch source records: %w", err)
	}

	dataset, err := sessions.Normalize(set, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to build dataset: %w", err)
	}

	a.mu.Lock()
	a.dataset = dataset
	a.mu.Unlock()
	return nil
}

// Dataset returns the current immutable dataset snapshot.
func (a *Application) Dataset() *sessions.Dataset {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dataset
}

// Start runs the HTTP server; it blocks until shutdown.
func (a *Application) Start() error {
	addr := ":" + a.Config.AppPort
	a.Logger.Info("Starting server",
		slog.String("addr", addr),
		slog.String("environment", a.Config.Environment))
	return a.server.Listen(addr)
}

// Shutdown gracefully stops the HTTP server.
func (a *Application) Shutdown(ctx context.Context) error {
	return a.server.ShutdownWithContext(ctx)
}

// Server exposes the underlying fiber app; intended for tests.
func (a *Application) Server() *fiber.App {
	return a.server
}
