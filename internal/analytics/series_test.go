package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clarityboard/internal/analytics"
	"clarityboard/internal/sessions"
	"clarityboard/internal/testsupport"
)

func TestDailySessions(t *testing.T) {
	// Input deliberately out of order; 2024-06-02 has no sessions and must
	// not appear as a zero point.
	records := []sessions.Session{
		testsupport.MakeSession(t, "u1", "2024-06-03"),
		testsupport.MakeSession(t, "u2", "2024-06-01"),
		testsupport.MakeSession(t, "u3", "2024-06-01"),
	}

	points := analytics.DailySessions(records)
	require.Len(t, points, 2)
	assert.Equal(t, analytics.DateStat{Date: "2024-06-01", Sessions: 2}, points[0])
	assert.Equal(t, analytics.DateStat{Date: "2024-06-03", Sessions: 1}, points[1])
}

func TestDailySessionsEmpty(t *testing.T) {
	assert.Empty(t, analytics.DailySessions(nil))
}

func TestWeekdaySessionsMondayFirst(t *testing.T) {
	// 2024-06-03 is a Monday, 2024-06-05 a Wednesday, 2024-06-09 a Sunday.
	// Input order is reversed to prove the output follows the week, not
	// the rows.
	records := []sessions.Session{
		testsupport.MakeSession(t, "u1", "2024-06-09"),
		testsupport.MakeSession(t, "u2", "2024-06-05"),
		testsupport.MakeSession(t, "u3", "2024-06-05"),
		testsupport.MakeSession(t, "u4", "2024-06-03"),
	}

	points := analytics.WeekdaySessions(records)
	require.Len(t, points, 3)
	assert.Equal(t, analytics.WeekdayStat{Weekday: "Monday", Sessions: 1}, points[0])
	assert.Equal(t, analytics.WeekdayStat{Weekday: "Wednesday", Sessions: 2}, points[1])
	assert.Equal(t, analytics.WeekdayStat{Weekday: "Sunday", Sessions: 1}, points[2])
}

func TestWeekdaySessionsAccumulatesAcrossWeeks(t *testing.T) {
	// Two Mondays, one week apart.
	records := []sessions.Session{
		testsupport.MakeSession(t, "u1", "2024-06-03"),
		testsupport.MakeSession(t, "u2", "2024-06-10"),
	}

	points := analytics.WeekdaySessions(records)
	require.Len(t, points, 1)
	assert.Equal(t, analytics.WeekdayStat{Weekday: "Monday", Sessions: 2}, points[0])
}
