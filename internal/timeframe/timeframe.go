package timeframe

import (
	"fmt"
	"time"
)

// ComparisonMode selects how the comparison window is derived from the
// primary analysis window.
type ComparisonMode string

const (
	// ComparisonTrailing compares against a window of identical length
	// ending the day before the primary window starts.
	ComparisonTrailing ComparisonMode = "trailing"
	// ComparisonSamePeriodLastMonth compares against the same dates
	// shifted back one calendar month.
	ComparisonSamePeriodLastMonth ComparisonMode = "same_period_last_month"
)

// ParseComparisonMode validates a client-supplied comparison mode, with
// trailing as the default for an empty value.
func ParseComparisonMode(raw string) (ComparisonMode, error) {
	switch raw {
	case "", string(ComparisonTrailing):
		return ComparisonTrailing, nil
	case string(ComparisonSamePeriodLastMonth):
		return ComparisonSamePeriodLastMonth, nil
	default:
		return "", fmt.Errorf("unknown comparison mode: %q", raw)
	}
}

// Period is an inclusive range of calendar dates. From and To are
// midnight-UTC dates; a single-day period has From == To.
type Period struct {
	From time.Time
	To   time.Time
}

// NewPeriod builds a period from inclusive boundary dates.
func NewPeriod(from, to time.Time) (Period, error) {
	from = truncateToDate(from)
	to = truncateToDate(to)
	if from.After(to) {
		return Period{}, fmt.Errorf("period start %s is after period end %s",
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	return Period{From: from, To: to}, nil
}

// Days returns the inclusive day count of the period.
func (p Period) Days() int {
	return int(p.To.Sub(p.From).Hours()/24) + 1
}

// Contains reports whether a calendar date falls inside the period.
func (p Period) Contains(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(p.From) && !d.After(p.To)
}

// String renders the period as "YYYY-MM-DD to YYYY-MM-DD".
func (p Period) String() string {
	return p.From.Format("2006-01-02") + " to " + p.To.Format("2006-01-02")
}

// Comparison derives the comparison period for the given mode. The result
// is always a valid period, even for degenerate single-day ranges.
//
// Trailing keeps the window length identical: for June 1-10 the comparison
// is May 22-31. Same-period-last-month keeps the day-of-month boundaries,
// clamping to the last day of the target month when the day would
// overflow (March 31 compares against February 29 in a leap year). Near
// month boundaries the clamped window can therefore be shorter than the
// primary window; that length difference is intentional and reported
// as-is so historical deltas stay stable.
func (p Period) Comparison(mode ComparisonMode) Period {
	if mode == ComparisonSamePeriodLastMonth {
		return Period{
			From: subtractMonth(p.From),
			To:   subtractMonth(p.To),
		}
	}

	end := p.From.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(p.Days() - 1))
	return Period{From: start, To: end}
}

// subtractMonth shifts a date back one calendar month, clamping the
// day-of-month to the length of the target month.
func subtractMonth(date time.Time) time.Time {
	year, month := date.Year(), date.Month()
	if month == time.January {
		year, month = year-1, time.December
	} else {
		month--
	}
	day := date.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
