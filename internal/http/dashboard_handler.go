package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"clarityboard/internal/analytics"
	"clarityboard/internal/timeframe"
)

// OverviewResponse is the view model of the Overview page: the seven KPI
// cards diffed against the comparison period, plus the aggregate
// breakdowns.
type OverviewResponse struct {
	Period           string                    `json:"period"`
	ComparisonPeriod string                    `json:"comparison_period"`
	ComparisonMode   string                    `json:"comparison_mode"`
	Cards            []analytics.KPICard       `json:"cards"`
	Devices          []analytics.CategoryShare `json:"devices"`
	OperatingSystems []analytics.CategoryShare `json:"operating_systems"`
	Countries        []analytics.CountryRow    `json:"countries"`
	TopReferrers     []analytics.ReferrerCount `json:"top_referrers"`
}

// Overview serves GET /api/v1/overview. Both periods are recomputed
// synchronously from the immutable dataset snapshot on every request.
func (h *Handler) Overview(c *fiber.Ctx) error {
	dataset := h.provider.Dataset()

	filter, err := h.parseFilter(c, dataset)
	if err != nil {
		return badRequest(c, err)
	}
	mode, err := timeframe.ParseComparisonMode(c.Query("comparison"))
	if err != nil {
		return badRequest(c, err)
	}

	comparisonPeriod := filter.Period.Comparison(mode)
	comparisonFilter := analytics.Filter{
		Period:    comparisonPeriod,
		Countries: filter.Countries,
		Devices:   filter.Devices,
	}

	slice := filter.Apply(dataset)
	comparisonSlice := comparisonFilter.Apply(dataset)

	current := analytics.Compute(slice, dataset, filter.Period)
	comparison := analytics.Compute(comparisonSlice, dataset, comparisonPeriod)

	h.logger.Debug("Computed overview",
		slog.String("period", filter.Period.String()),
		slog.String("comparison_period", comparisonPeriod.String()),
		slog.Int("sessions", current.TotalSessions))

	return c.JSON(&OverviewResponse{
		Period:           filter.Period.String(),
		ComparisonPeriod: comparisonPeriod.String(),
		ComparisonMode:   string(mode),
		Cards:            analytics.BuildKPICards(current, comparison),
		Devices:          convertCategoryShares(analytics.DeviceDistribution(slice)),
		OperatingSystems: convertOSShares(analytics.OSDistribution(slice)),
		Countries:        convertCountryRows(analytics.CountryBreakdown(slice, dataset, filter.Period)),
		TopReferrers:     convertReferrerCounts(analytics.TopReferrers(slice, analytics.TopLimit)),
	})
}
