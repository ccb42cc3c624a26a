package analytics

import (
	"clarityboard/internal/sessions"
	"clarityboard/internal/timeframe"
)

// KPISet holds the seven dashboard metrics for one evaluated period.
// KPI sets are ephemeral: recomputed on every filter change, never stored.
type KPISet struct {
	UniqueUsers          int     `json:"unique_users"`
	NewUsers             int     `json:"new_users"`
	TotalSessions        int     `json:"total_sessions"`
	ReturningUsers       int     `json:"returning_users"`
	AvgDurationSeconds   float64 `json:"avg_duration_seconds"`
	AvgDurationFormatted string  `json:"avg_duration_formatted"`
	PageViews            int     `json:"page_views"`
	BounceRate           float64 `json:"bounce_rate"`
}

// Compute calculates all KPIs for a filtered slice of the dataset.
//
// The full dataset is consulted only for first-seen lookups: whether a
// user is new or returning is a property of their entire history, not of
// the slice, so it must be evaluated against unfiltered data. All edge
// cases (empty slice, zero unique users) degrade to zeros and the "-"
// duration placeholder; Compute never fails.
func Compute(slice []sessions.Session, dataset *sessions.Dataset, period timeframe.Period) KPISet {
	if len(slice) == 0 {
		return KPISet{AvgDurationFormatted: "-"}
	}

	kpis := KPISet{TotalSessions: len(slice)}

	sessionCounts := make(map[string]int)
	pageCounts := make(map[string]int)
	totalSeconds := 0
	for _, s := range slice {
		sessionCounts[s.UserID]++
		pageCounts[s.UserID] += s.PageCount
		totalSeconds += s.DurationSeconds
		kpis.PageViews += s.PageCount
	}
	kpis.UniqueUsers = len(sessionCounts)

	// New users: first-ever appearance falls inside the period. Returning
	// users: multiple sessions within the period, or first seen strictly
	// before it. The two returning populations are merged as a set union
	// over user id so an overlap could never be counted twice.
	returning := make(map[string]struct{})
	for userID := range sessionCounts {
		firstSeen, ok := dataset.FirstSeen(userID)
		if ok && period.Contains(firstSeen) {
			kpis.NewUsers++
		}
		if sessionCounts[userID] > 1 {
			returning[userID] = struct{}{}
		}
		if ok && firstSeen.Before(period.From) {
			returning[userID] = struct{}{}
		}
	}
	kpis.ReturningUsers = len(returning)

	kpis.AvgDurationSeconds = float64(totalSeconds) / float64(len(slice))
	kpis.AvgDurationFormatted = sessions.FormatDuration(kpis.AvgDurationSeconds)

	// Bounce rate: share of unique users whose page views across the
	// whole period total exactly one.
	bounced := 0
	for _, pages := range pageCounts {
		if pages == 1 {
			bounced++
		}
	}
	kpis.BounceRate = float64(bounced) / float64(kpis.UniqueUsers) * 100

	return kpis
}
