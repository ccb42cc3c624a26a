package analytics

import (
	"fmt"

	"clarityboard/internal/sessions"
)

// Direction indicates how a metric moved against the comparison period.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionFlat Direction = "flat"
	DirectionDown Direction = "down"
)

// KPICard pairs a current metric value with its comparison-period value
// for period-over-period display.
type KPICard struct {
	Label             string    `json:"label"`
	Current           float64   `json:"current"`
	Comparison        float64   `json:"comparison"`
	CurrentDisplay    string    `json:"current_display"`
	ComparisonDisplay string    `json:"comparison_display"`
	ChangePct         float64   `json:"change_pct"`
	Direction         Direction `json:"direction"`
}

type cardFormat int

const (
	formatNumber cardFormat = iota
	formatDuration
	formatPercentage
)

// BuildKPICards diffs two KPI sets into the seven dashboard cards, in
// display order.
func BuildKPICards(current, comparison KPISet) []KPICard {
	return []KPICard{
		newCard("Unique Users", float64(current.UniqueUsers), float64(comparison.UniqueUsers), formatNumber),
		newCard("New Users", float64(current.NewUsers), float64(comparison.NewUsers), formatNumber),
		newCard("Total Sessions", float64(current.TotalSessions), float64(comparison.TotalSessions), formatNumber),
		newCard("Returning Users", float64(current.ReturningUsers), float64(comparison.ReturningUsers), formatNumber),
		newCard("Avg Session Duration", current.AvgDurationSeconds, comparison.AvgDurationSeconds, formatDuration),
		newCard("Page Views", float64(current.PageViews), float64(comparison.PageViews), formatNumber),
		newCard("Bounce Rate", current.BounceRate, comparison.BounceRate, formatPercentage),
	}
}

func newCard(label string, current, comparison float64, format cardFormat) KPICard {
	// A zero comparison baseline reports a flat 0% change rather than a
	// division blow-up or a fake +100%.
	changePct := 0.0
	if comparison != 0 {
		changePct = (current - comparison) / comparison * 100
	}

	direction := DirectionFlat
	switch {
	case changePct > 0:
		direction = DirectionUp
	case changePct < 0:
		direction = DirectionDown
	}

	return KPICard{
		Label:             label,
		Current:           current,
		Comparison:        comparison,
		CurrentDisplay:    formatCardValue(current, format),
		ComparisonDisplay: formatCardValue(comparison, format),
		ChangePct:         changePct,
		Direction:         direction,
	}
}

func formatCardValue(value float64, format cardFormat) string {
	switch format {
	case formatDuration:
		return sessions.FormatDuration(value)
	case formatPercentage:
		return fmt.Sprintf("%.1f%%", value)
	default:
		return fmt.Sprintf("%d", int64(value))
	}
}
