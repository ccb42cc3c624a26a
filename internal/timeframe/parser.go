package timeframe

import (
	"fmt"
	"time"
)

const boundaryDateLayout = "2006-01-02"

// ParsePeriod builds a period from client-supplied boundary dates in
// YYYY-MM-DD form, falling back to the given defaults when a boundary is
// empty. The defaults come from the loaded dataset's date range, so an
// unfiltered request covers everything.
func ParsePeriod(fromRaw, toRaw string, defaultFrom, defaultTo time.Time) (Period, error) {
	from := defaultFrom
	if fromRaw != "" {
		parsed, err := time.Parse(boundaryDateLayout, fromRaw)
		if err != nil {
			return Period{}, fmt.Errorf("invalid 'from' date %q: %w", fromRaw, err)
		}
		from = parsed
	}

	to := defaultTo
	if toRaw != "" {
		parsed, err := time.Parse(boundaryDateLayout, toRaw)
		if err != nil {
			return Period{}, fmt.Errorf("invalid 'to' date %q: %w", toRaw, err)
		}
		to = parsed
	}

	return NewPeriod(from, to)
}
