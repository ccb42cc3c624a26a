// Package testsupport provides dataset fixtures shared by tests.
package testsupport

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"clarityboard/internal/sessions"
)

// Date parses a YYYY-MM-DD string into a midnight-UTC date. It fails the
// test on bad input so fixtures stay readable.
func Date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err, "bad fixture date %q", value)
	return parsed
}

// SessionOption mutates a fixture session.
type SessionOption func(*sessions.Session)

func WithCountry(country string) SessionOption {
	return func(s *sessions.Session) { s.Country = country }
}

func WithDevice(device string) SessionOption {
	return func(s *sessions.Session) { s.Device = device }
}

func WithOS(os string) SessionOption {
	return func(s *sessions.Session) { s.OS = os }
}

func WithReferrer(referrer string) SessionOption {
	return func(s *sessions.Session) { s.Referrer = referrer }
}

func WithPages(pages int) SessionOption {
	return func(s *sessions.Session) { s.PageCount = pages }
}

func WithClicks(clicks int) SessionOption {
	return func(s *sessions.Session) { s.Clicks = clicks }
}

func WithDuration(seconds int) SessionOption {
	return func(s *sessions.Session) { s.DurationSeconds = seconds }
}

// MakeSession builds one canonical session with sensible defaults: one
// page view, no clicks, Unknown country/device/OS, Direct referrer.
func MakeSession(t *testing.T, userID, date string, opts ...SessionOption) sessions.Session {
	t.Helper()
	s := sessions.Session{
		UserID:    userID,
		Date:      Date(t, date),
		Country:   sessions.UnknownValue,
		Device:    sessions.UnknownValue,
		OS:        sessions.UnknownValue,
		Referrer:  sessions.DirectReferrer,
		PageCount: 1,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// MakeDataset builds an immutable dataset from fixture sessions.
func MakeDataset(records ...sessions.Session) *sessions.Dataset {
	return sessions.NewDataset(records)
}

// DiscardLogger returns a logger that swallows all output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WriteCSV writes CSV content to a temp file and returns its path.
func WriteCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
