package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Health serves GET /health with liveness and dataset size.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"sessions": h.provider.Dataset().Len(),
	})
}

// FiltersResponse lists the selectable filter values for the dataset.
type FiltersResponse struct {
	Countries []string `json:"countries"`
	Devices   []string `json:"devices"`
	MinDate   string   `json:"min_date"`
	MaxDate   string   `json:"max_date"`
}

// Filters serves GET /api/v1/filters, which drives the filter inputs.
func (h *Handler) Filters(c *fiber.Ctx) error {
	dataset := h.provider.Dataset()
	return c.JSON(&FiltersResponse{
		Countries: dataset.Countries(),
		Devices:   dataset.Devices(),
		MinDate:   dataset.MinDate().Format("2006-01-02"),
		MaxDate:   dataset.MaxDate().Format("2006-01-02"),
	})
}

// Refresh serves POST /api/v1/refresh: re-fetch the source feed and swap
// in a freshly normalized dataset. The previous snapshot keeps serving
// requests until the reload succeeds.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	if err := h.provider.Reload(c.Context()); err != nil {
		h.logger.Error("Dataset reload failed", slog.Any("error", err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to reload dataset from source",
		})
	}

	count := h.provider.Dataset().Len()
	h.logger.Info("Dataset reloaded", slog.Int("sessions", count))
	return c.JSON(fiber.Map{
		"status":   "reloaded",
		"sessions": count,
	})
}
