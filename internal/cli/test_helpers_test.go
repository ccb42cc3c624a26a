package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"clarityboard/internal/testsupport"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// fixtureExport writes a small session export and returns its path.
func fixtureExport(t *testing.T) string {
	t.Helper()
	return testsupport.WriteCSV(t,
		"Clarity user ID,Date,Country,Device,OS,Referrer,Page count,Clicks,Session duration\n"+
			"u1,20/05/2024,US,PC,Windows,Direct,2,1,1:00\n"+
			"u1,03/06/2024,US,PC,Windows,Direct,3,2,2:00\n"+
			"u2,05/06/2024,DE,Mobile,Android,google.com,1,0,0:30\n"+
			"u3,10/06/2024,US,Mobile,Android,Direct,1,1,0:45\n")
}
