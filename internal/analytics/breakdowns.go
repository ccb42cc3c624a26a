package analytics

import (
	"sort"
	"time"

	"clarityboard/internal/sessions"
	"clarityboard/internal/timeframe"
)

// TopLimit caps the referrer and user leaderboards.
const TopLimit = 10

// CountryRow is one row of the per-country breakdown table.
type CountryRow struct {
	Country     string `json:"country"`
	UniqueUsers int    `json:"unique_users"`
	NewUsers    int    `json:"new_users"`
	Sessions    int    `json:"sessions"`
	TimeSpent   string `json:"time_spent"`
}

// CountryBreakdown computes per-country KPIs over the slice, sorted by
// sessions descending. TimeSpent is the formatted sum of session
// durations, not an average.
func CountryBreakdown(slice []sessions.Session, dataset *sessions.Dataset, period timeframe.Period) []CountryRow {
	byCountry := make(map[string][]sessions.Session)
	for _, s := range slice {
		byCountry[s.Country] = append(byCountry[s.Country], s)
	}

	rows := make([]CountryRow, 0, len(byCountry))
	for country, subset := range byCountry {
		kpis := Compute(subset, dataset, period)
		totalSeconds := 0
		for _, s := range subset {
			totalSeconds += s.DurationSeconds
		}
		rows = append(rows, CountryRow{
			Country:     country,
			UniqueUsers: kpis.UniqueUsers,
			NewUsers:    kpis.NewUsers,
			Sessions:    kpis.TotalSessions,
			TimeSpent:   sessions.FormatDuration(float64(totalSeconds)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Sessions != rows[j].Sessions {
			return rows[i].Sessions > rows[j].Sessions
		}
		return rows[i].Country < rows[j].Country
	})
	return rows
}

// CategoryShare is one slice of a categorical session distribution.
type CategoryShare struct {
	Name     string  `json:"name"`
	Sessions int     `json:"sessions"`
	Percent  float64 `json:"percent"`
}

// DeviceDistribution returns the share of sessions per device type.
func DeviceDistribution(slice []sessions.Session) []CategoryShare {
	return distribution(slice, func(s sessions.Session) string { return s.Device })
}

// OSDistribution returns the share of sessions per operating system.
func OSDistribution(slice []sessions.Session) []CategoryShare {
	return distribution(slice, func(s sessions.Session) string { return s.OS })
}

func distribution(slice []sessions.Session, key func(sessions.Session) string) []CategoryShare {
	counts := make(map[string]int)
	for _, s := range slice {
		counts[key(s)]++
	}

	shares := make([]CategoryShare, 0, len(counts))
	for name, count := range counts {
		shares = append(shares, CategoryShare{
			Name:     name,
			Sessions: count,
			Percent:  float64(count) / float64(len(slice)) * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Sessions != shares[j].Sessions {
			return shares[i].Sessions > shares[j].Sessions
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

// ReferrerCount is one bar of the top-referrers chart.
type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Sessions int    `json:"sessions"`
}

// TopReferrers returns the referrers with the most sessions, descending,
// truncated to limit.
func TopReferrers(slice []sessions.Session, limit int) []ReferrerCount {
	counts := make(map[string]int)
	for _, s := range slice {
		counts[s.Referrer]++
	}

	top := make([]ReferrerCount, 0, len(counts))
	for referrer, count := range counts {
		top = append(top, ReferrerCount{Referrer: referrer, Sessions: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Sessions != top[j].Sessions {
			return top[i].Sessions > top[j].Sessions
		}
		return top[i].Referrer < top[j].Referrer
	})
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}

// UserRow is one row of the top-users table. Country, device, and
// referrer take the first value seen for the user within the slice.
type UserRow struct {
	UserID    string `json:"user_id"`
	Country   string `json:"country"`
	Device    string `json:"device"`
	Referrer  string `json:"referrer"`
	Sessions  int    `json:"sessions"`
	Clicks    int    `json:"clicks"`
	PageViews int    `json:"page_views"`
}

// TopUsers aggregates the slice per user and returns the most active
// users by session count, descending, truncated to limit.
func TopUsers(slice []sessions.Session, limit int) []UserRow {
	byUser := make(map[string]*UserRow)
	order := make([]string, 0)
	for _, s := range slice {
		row, ok := byUser[s.UserID]
		if !ok {
			row = &UserRow{
				UserID:   s.UserID,
				Country:  s.Country,
				Device:   s.Device,
				Referrer: s.Referrer,
			}
			byUser[s.UserID] = row
			order = append(order, s.UserID)
		}
		row.Sessions++
		row.Clicks += s.Clicks
		row.PageViews += s.PageCount
	}

	rows := make([]UserRow, 0, len(order))
	for _, userID := range order {
		rows = append(rows, *byUser[userID])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Sessions > rows[j].Sessions
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// NewUserRow is one row of the new-users table.
type NewUserRow struct {
	UserID      string    `json:"user_id"`
	Country     string    `json:"country"`
	Device      string    `json:"device"`
	Referrer    string    `json:"referrer"`
	LatestVisit time.Time `json:"latest_visit"`
}

// NewUsers lists the users in the slice whose first-ever appearance falls
// inside the period, with their latest visit date, newest first.
func NewUsers(slice []sessions.Session, dataset *sessions.Dataset, period timeframe.Period) []NewUserRow {
	byUser := make(map[string]*NewUserRow)
	order := make([]string, 0)
	for _, s := range slice {
		firstSeen, ok := dataset.FirstSeen(s.UserID)
		if !ok || !period.Contains(firstSeen) {
			continue
		}
		row, found := byUser[s.UserID]
		if !found {
			row = &NewUserRow{
				UserID:      s.UserID,
				Country:     s.Country,
				Device:      s.Device,
				Referrer:    s.Referrer,
				LatestVisit: s.Date,
			}
			byUser[s.UserID] = row
			order = append(order, s.UserID)
			continue
		}
		if s.Date.After(row.LatestVisit) {
			row.LatestVisit = s.Date
		}
	}

	rows := make([]NewUserRow, 0, len(order))
	for _, userID := range order {
		rows = append(rows, *byUser[userID])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].LatestVisit.After(rows[j].LatestVisit)
	})
	return rows
}
