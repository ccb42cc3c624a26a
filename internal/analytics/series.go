package analytics

import (
	"sort"
	"time"

	"clarityboard/internal/sessions"
)

// DateStat is one point of the daily session time series.
type DateStat struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
}

// DailySessions counts sessions per calendar date present in the slice,
// ascending by date. Dates with zero sessions are omitted; the series is
// sparse.
func DailySessions(slice []sessions.Session) []DateStat {
	counts := make(map[string]int)
	for _, s := range slice {
		counts[s.Date.Format("2006-01-02")]++
	}

	points := make([]DateStat, 0, len(counts))
	for date, count := range counts {
		points = append(points, DateStat{Date: date, Sessions: count})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// WeekdayStat is one point of the sessions-by-weekday series.
type WeekdayStat struct {
	Weekday  string `json:"weekday"`
	Sessions int    `json:"sessions"`
}

// WeekdaySessions counts sessions per weekday, ordered Monday through
// Sunday regardless of input row order. Weekdays with zero sessions are
// omitted, mirroring the sparse daily series.
func WeekdaySessions(slice []sessions.Session) []WeekdayStat {
	counts := make(map[time.Weekday]int)
	for _, s := range slice {
		counts[s.Date.Weekday()]++
	}

	// time.Weekday starts on Sunday; the dashboard week starts on Monday.
	week := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	points := make([]WeekdayStat, 0, len(counts))
	for _, day := range week {
		if count, ok := counts[day]; ok {
			points = append(points, WeekdayStat{Weekday: day.String(), Sessions: count})
		}
	}
	return points
}
