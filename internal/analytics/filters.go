package analytics

import (
	"clarityboard/internal/sessions"
	"clarityboard/internal/timeframe"
)

// Filter holds the active filter-surface selections: an inclusive date
// range plus category selections. Empty country/device selections mean
// "all".
type Filter struct {
	Period    timeframe.Period
	Countries []string
	Devices   []string
}

// Apply cuts the slice of the dataset matching the filter. The returned
// slice shares no state with the filter; re-applying after a selection
// change is a full recomputation over the canonical dataset.
func (f Filter) Apply(dataset *sessions.Dataset) []sessions.Session {
	countries := toSet(f.Countries)
	devices := toSet(f.Devices)

	var out []sessions.Session
	for _, s := range dataset.Sessions() {
		if !f.Period.Contains(s.Date) {
			continue
		}
		if countries != nil {
			if _, ok := countries[s.Country]; !ok {
				continue
			}
		}
		if devices != nil {
			if _, ok := devices[s.Device]; !ok {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
