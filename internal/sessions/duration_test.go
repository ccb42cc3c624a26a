package sessions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clarityboard/internal/sessions"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"zero mm:ss", "0:00", 0},
		{"mm:ss", "1:30", 90},
		{"hh:mm:ss", "2:00:00", 7200},
		{"hh:mm:ss with minutes and seconds", "1:02:03", 3723},
		{"large minute count", "75:10", 4510},
		{"surrounding whitespace", "  3:15 ", 195},
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"no colon", "90", 0},
		{"non numeric", "abc", 0},
		{"non numeric component", "1:xx", 0},
		{"too many components", "1:2:3:4", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sessions.ParseDuration(tt.input))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"zero reads as absent", 0, "-"},
		{"seconds only", 45, "45s"},
		{"minutes and seconds", 90, "1m30s"},
		{"hours drop the seconds", 3661, "1h1m"},
		{"exact hour", 7200, "2h0m"},
		{"fractional seconds truncate", 59.9, "59s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sessions.FormatDuration(tt.input))
		})
	}
}

func TestParseThenFormatAveragedDuration(t *testing.T) {
	// A typical averaged pair of sessions: 1:30 and 2:30 average to 2m0s.
	total := sessions.ParseDuration("1:30") + sessions.ParseDuration("2:30")
	assert.Equal(t, "2m0s", sessions.FormatDuration(float64(total)/2))
}
