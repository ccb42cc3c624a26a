package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"clarityboard/internal/analytics"
)

// NewUserRow is the display form of a new-users table row.
type NewUserRow struct {
	UserID      string `json:"user_id"`
	Country     string `json:"country"`
	Device      string `json:"device"`
	Referrer    string `json:"referrer"`
	LatestVisit string `json:"latest_visit"`
}

// InsightsResponse is the view model of the User Insights page.
type InsightsResponse struct {
	Period          string                  `json:"period"`
	TopUsers        []analytics.UserRow     `json:"top_users"`
	NewUsers        []NewUserRow            `json:"new_users"`
	DailySessions   []analytics.DateStat    `json:"daily_sessions"`
	WeekdaySessions []analytics.WeekdayStat `json:"weekday_sessions"`
}

// Insights serves GET /api/v1/insights.
func (h *Handler) Insights(c *fiber.Ctx) error {
	dataset := h.provider.Dataset()

	filter, err := h.parseFilter(c, dataset)
	if err != nil {
		return badRequest(c, err)
	}

	slice := filter.Apply(dataset)

	newUsers := analytics.NewUsers(slice, dataset, filter.Period)
	newUserRows := make([]NewUserRow, len(newUsers))
	for i, row := range newUsers {
		newUserRows[i] = NewUserRow{
			UserID:      row.UserID,
			Country:     row.Country,
			Device:      row.Device,
			Referrer:    row.Referrer,
			LatestVisit: row.LatestVisit.Format("2006-01-02"),
		}
	}

	h.logger.Debug("Computed insights",
		slog.String("period", filter.Period.String()),
		slog.Int("sessions", len(slice)),
		slog.Int("new_users", len(newUserRows)))

	return c.JSON(&InsightsResponse{
		Period:          filter.Period.String(),
		TopUsers:        analytics.TopUsers(slice, analytics.TopLimit),
		NewUsers:        newUserRows,
		DailySessions:   analytics.DailySessions(slice),
		WeekdaySessions: analytics.WeekdaySessions(slice),
	})
}
