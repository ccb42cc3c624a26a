package cli

import (
	"encoding/json"
	"os"

	"clarityboard/internal/analytics"
)

// Execute runs the insights command: top users, new users, and the daily
// and weekday session series for the selected period.
func (cmd *InsightsCommand) Execute(args []string) error {
	dataset, err := loadDataset(cmd.globals)
	if err != nil {
		return err
	}

	period, err := resolvePeriod(cmd.From, cmd.To, dataset)
	if err != nil {
		return err
	}
	slice := applyFilter(dataset, period, cmd.Country, cmd.Device)

	topUsers := analytics.TopUsers(slice, analytics.TopLimit)
	newUsers := analytics.NewUsers(slice, dataset, period)
	daily := analytics.DailySessions(slice)
	weekdays := analytics.WeekdaySessions(slice)

	if cmd.globals.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"period":           period.String(),
			"top_users":        topUsers,
			"new_users":        newUsers,
			"daily_sessions":   daily,
			"weekday_sessions": weekdays,
		})
	}

	printf("Period: %s\n\n", period)

	printf("Top %d users by sessions:\n", analytics.TopLimit)
	for _, row := range topUsers {
		printf("  %-20s %-16s %-10s sessions=%-4d clicks=%-5d pages=%d\n",
			row.UserID, row.Country, row.Device, row.Sessions, row.Clicks, row.PageViews)
	}

	printf("\nNew users in period: %d\n", len(newUsers))
	for _, row := range newUsers {
		printf("  %-20s %-16s %-10s last visit %s\n",
			row.UserID, row.Country, row.Device, row.LatestVisit.Format("2006-01-02"))
	}

	printf("\nDaily sessions:\n")
	for _, point := range daily {
		printf("  %s  %d\n", point.Date, point.Sessions)
	}

	printf("\nSessions by weekday:\n")
	for _, point := range weekdays {
		printf("  %-9s  %d\n", point.Weekday, point.Sessions)
	}
	return nil
}
