package cli

import (
	"encoding/json"
	"os"

	"clarityboard/internal/analytics"
	"clarityboard/internal/timeframe"
)

// Execute runs the report command: the Overview KPI cards with
// period-over-period comparison, printed as text or JSON.
func (cmd *ReportCommand) Execute(args []string) error {
	dataset, err := loadDataset(cmd.globals)
	if err != nil {
		return err
	}

	period, err := resolvePeriod(cmd.From, cmd.To, dataset)
	if err != nil {
		return err
	}
	mode, err := timeframe.ParseComparisonMode(cmd.Comparison)
	if err != nil {
		return err
	}
	comparisonPeriod := period.Comparison(mode)

	slice := applyFilter(dataset, period, cmd.Country, cmd.Device)
	comparisonSlice := applyFilter(dataset, comparisonPeriod, cmd.Country, cmd.Device)

	current := analytics.Compute(slice, dataset, period)
	comparison := analytics.Compute(comparisonSlice, dataset, comparisonPeriod)
	cards := analytics.BuildKPICards(current, comparison)

	if cmd.globals.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"period":            period.String(),
			"comparison_period": comparisonPeriod.String(),
			"comparison_mode":   string(mode),
			"cards":             cards,
		})
	}

	printf("Period:            %s\n", period)
	printf("Comparison (%s): %s\n\n", mode, comparisonPeriod)
	for _, card := range cards {
		printf("%-22s %12s   %s %+.1f%% (%s)\n",
			card.Label, card.CurrentDisplay, arrow(card.Direction),
			card.ChangePct, card.ComparisonDisplay)
	}
	return nil
}

func arrow(direction analytics.Direction) string {
	switch direction {
	case analytics.DirectionUp:
		return "↗"
	case analytics.DirectionDown:
		return "↘"
	default:
		return "→"
	}
}
