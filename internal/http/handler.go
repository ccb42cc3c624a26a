// Package http contains the dashboard API handlers.
package http

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"clarityboard/internal/analytics"
	"clarityboard/internal/sessions"
	"clarityboard/internal/timeframe"
)

// DatasetProvider hands out the current immutable dataset snapshot and
// rebuilds it on explicit reload.
type DatasetProvider interface {
	Dataset() *sessions.Dataset
	Reload(ctx context.Context) error
}

// Handler serves the dashboard API over the loaded dataset.
type Handler struct {
	provider DatasetProvider
	logger   *slog.Logger
}

// NewHandler creates the API handler.
func NewHandler(provider DatasetProvider, logger *slog.Logger) *Handler {
	return &Handler{provider: provider, logger: logger}
}

// parseFilter builds the analytics filter from request query parameters,
// defaulting the period to the dataset's full date range and the category
// selections to "all".
func (h *Handler) parseFilter(c *fiber.Ctx, dataset *sessions.Dataset) (analytics.Filter, error) {
	period, err := timeframe.ParsePeriod(
		c.Query("from"), c.Query("to"),
		dataset.MinDate(), dataset.MaxDate(),
	)
	if err != nil {
		return analytics.Filter{}, err
	}

	return analytics.Filter{
		Period:    period,
		Countries: splitList(c.Query("countries")),
		Devices:   splitList(c.Query("devices")),
	}, nil
}

// splitList parses a comma-separated query value; empty means no filter.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
