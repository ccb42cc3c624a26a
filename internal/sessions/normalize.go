package sessions

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// columnRule describes how one optional export column maps onto the
// canonical session shape. Each rule is total: a missing column is filled
// with whenMissing for every row, and an empty cell is filled with
// whenMissing only when fillEmpty is set, otherwise the raw cell value is
// handed to assign as-is.
type columnRule struct {
	column      string
	whenMissing string
	fillEmpty   bool
	assign      func(s *Session, raw string)
}

// The fixed defaulting pipeline for every column besides user id and date.
// Order matters only for readability; rules are independent.
var optionalColumnRules = []columnRule{
	{ColCountry, UnknownValue, true, func(s *Session, raw string) { s.Country = raw }},
	{ColDevice, UnknownValue, true, func(s *Session, raw string) { s.Device = raw }},
	{ColOS, UnknownValue, true, func(s *Session, raw string) { s.OS = raw }},
	{ColReferrer, DirectReferrer, true, func(s *Session, raw string) { s.Referrer = raw }},
	{ColPageCount, "1", false, func(s *Session, raw string) { s.PageCount = parseCount(raw) }},
	{ColClicks, "0", true, func(s *Session, raw string) { s.Clicks = parseCount(raw) }},
	{ColDuration, "", false, func(s *Session, raw string) { s.DurationSeconds = ParseDuration(raw) }},
}

// Timestamps in the export follow the day-first convention.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2006-01-02",
}

// Normalize cleans and coerces a raw record set into the canonical
// dataset. Rows without a user id or with an unparseable date are dropped.
// A column absent from the feed is synthesized with its default value and
// reported with a warning so operators know the source feed is missing it.
// An error is returned only when nothing usable remains: the dashboard
// cannot render on an empty dataset.
func Normalize(set RecordSet, logger *slog.Logger) (*Dataset, error) {
	if len(set.Rows) == 0 {
		return nil, fmt.Errorf("record set is empty: no data found in the source feed")
	}
	if !set.HasColumn(ColUserID) {
		return nil, fmt.Errorf("record set is missing the mandatory %q column", ColUserID)
	}
	if !set.HasColumn(ColDate) {
		return nil, fmt.Errorf("record set is missing the mandatory %q column", ColDate)
	}

	for _, rule := range optionalColumnRules {
		if !set.HasColumn(rule.column) {
			logger.Warn("Column not found in source feed, using default value",
				slog.String("column", rule.column),
				slog.String("default", rule.whenMissing))
		}
	}

	records := make([]Session, 0, len(set.Rows))
	dropped := 0
	for _, row := range set.Rows {
		userID := strings.TrimSpace(row[ColUserID])
		if userID == "" {
			dropped++
			continue
		}
		date, ok := parseDate(row[ColDate])
		if !ok {
			dropped++
			continue
		}

		s := Session{UserID: userID, Date: date}
		for _, rule := range optionalColumnRules {
			raw := strings.TrimSpace(row[rule.column])
			if !set.HasColumn(rule.column) || (rule.fillEmpty && raw == "") {
				raw = rule.whenMissing
			}
			rule.assign(&s, raw)
		}
		records = append(records, s)
	}

	if dropped > 0 {
		logger.Warn("Dropped rows with missing user id or unparseable date",
			slog.Int("dropped", dropped),
			slog.Int("retained", len(records)))
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no usable rows after normalization: every row lacked a user id or a valid date")
	}

	logger.Info("Built canonical dataset",
		slog.Int("sessions", len(records)),
		slog.Int("columns", len(set.Columns)))

	return NewDataset(records), nil
}

// parseDate parses a day-first calendar date, truncated to midnight UTC.
func parseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	// Some exports append a time-of-day component; the data model only
	// tracks calendar dates, so everything after the first space is cut.
	if i := strings.IndexByte(value, ' '); i > 0 {
		value = value[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// parseCount parses a non-negative integer cell, degrading to 0 on any
// parse failure rather than dropping the row.
func parseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
