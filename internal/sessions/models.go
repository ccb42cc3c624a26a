package sessions

import (
	"sort"
	"time"
)

// Default values for categorical fields that arrive empty or missing.
const (
	UnknownValue   = "Unknown"
	DirectReferrer = "Direct"
)

// Canonical column names of the session export. Source headers that differ
// are renamed onto these before normalization (see internal/source).
const (
	ColUserID    = "Clarity user ID"
	ColDate      = "Date"
	ColCountry   = "Country"
	ColDevice    = "Device"
	ColOS        = "OS"
	ColReferrer  = "Referrer"
	ColPageCount = "Page count"
	ColClicks    = "Clicks"
	ColDuration  = "Session duration"
)

// Record is one raw row of the export, keyed by column name.
type Record map[string]string

// RecordSet is the rectangular record set produced by the data source.
type RecordSet struct {
	Columns []string
	Rows    []Record
}

// HasColumn reports whether the source feed carried the named column.
func (rs RecordSet) HasColumn(name string) bool {
	for _, c := range rs.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Session is one row of the canonical dataset: one recorded visit by one
// user on one calendar date. Every field is total; UserID and Date are
// guaranteed non-empty by normalization.
type Session struct {
	UserID          string
	Date            time.Time // calendar date at midnight UTC
	Country         string
	Device          string
	OS              string
	Referrer        string
	PageCount       int
	Clicks          int
	DurationSeconds int
}

// Dataset is the canonical session table, built once per analysis session
// and immutable thereafter. The per-user first-seen dates are precomputed
// at construction so new/returning classification never depends on the
// currently filtered slice.
type Dataset struct {
	sessions  []Session
	firstSeen map[string]time.Time
}

// NewDataset builds an immutable dataset from normalized sessions.
func NewDataset(records []Session) *Dataset {
	firstSeen := make(map[string]time.Time, len(records))
	for _, s := range records {
		if seen, ok := firstSeen[s.UserID]; !ok || s.Date.Before(seen) {
			firstSeen[s.UserID] = s.Date
		}
	}
	return &Dataset{sessions: records, firstSeen: firstSeen}
}

// Sessions returns the full canonical session table.
func (d *Dataset) Sessions() []Session {
	return d.sessions
}

// Len returns the total number of sessions.
func (d *Dataset) Len() int {
	return len(d.sessions)
}

// FirstSeen returns the earliest recorded session date for a user.
func (d *Dataset) FirstSeen(userID string) (time.Time, bool) {
	t, ok := d.firstSeen[userID]
	return t, ok
}

// MinDate returns the earliest session date in the dataset.
func (d *Dataset) MinDate() time.Time {
	var min time.Time
	for _, s := range d.sessions {
		if min.IsZero() || s.Date.Before(min) {
			min = s.Date
		}
	}
	return min
}

// MaxDate returns the latest session date in the dataset.
func (d *Dataset) MaxDate() time.Time {
	var max time.Time
	for _, s := range d.sessions {
		if s.Date.After(max) {
			max = s.Date
		}
	}
	return max
}

// Countries returns the distinct country values, sorted.
func (d *Dataset) Countries() []string {
	return d.distinct(func(s Session) string { return s.Country })
}

// Devices returns the distinct device values, sorted.
func (d *Dataset) Devices() []string {
	return d.distinct(func(s Session) string { return s.Device })
}

func (d *Dataset) distinct(key func(Session) string) []string {
	seen := make(map[string]struct{})
	for _, s := range d.sessions {
		seen[key(s)] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
