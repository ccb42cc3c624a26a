package sessions

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDuration converts a session duration string to whole seconds.
// One colon means mm:ss, two colons mean hh:mm:ss. Anything else,
// including empty strings and non-numeric components, yields 0; the
// export's duration column is best-effort and never fails a row.
func ParseDuration(raw string) int {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0
	}

	parts := strings.Split(value, ":")
	switch len(parts) {
	case 2: // mm:ss
		minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0
		}
		seconds, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0
		}
		return minutes*60 + seconds
	case 3: // hh:mm:ss
		hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0
		}
		minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0
		}
		seconds, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return 0
		}
		return hours*3600 + minutes*60 + seconds
	default:
		return 0
	}
}

// FormatDuration renders a duration in seconds as a compact label:
// "1h5m", "3m20s", "45s". Zero renders as "-" so empty metrics read as
// absent rather than instantaneous.
func FormatDuration(totalSeconds float64) string {
	if totalSeconds == 0 {
		return "-"
	}

	hours := int(totalSeconds) / 3600
	minutes := (int(totalSeconds) % 3600) / 60
	seconds := int(totalSeconds) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
