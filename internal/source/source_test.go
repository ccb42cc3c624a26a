package source_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clarityboard/internal/sessions"
	"clarityboard/internal/source"
	"clarityboard/internal/testsupport"
)

func TestParse(t *testing.T) {
	csvData := "Clarity user ID,Date,Country\nu1,01/06/2024,US\nu2,02/06/2024,DE\n"

	set, err := source.Parse(strings.NewReader(csvData), source.ColumnMapping{})
	require.NoError(t, err)

	assert.Equal(t, []string{sessions.ColUserID, sessions.ColDate, sessions.ColCountry}, set.Columns)
	require.Len(t, set.Rows, 2)
	assert.Equal(t, "u1", set.Rows[0][sessions.ColUserID])
	assert.Equal(t, "DE", set.Rows[1][sessions.ColCountry])
}

func TestParseRenamesHeadersThroughMapping(t *testing.T) {
	csvData := "User ID,Visit date\nu1,01/06/2024\n"
	mapping := source.ColumnMapping{
		"User ID":    sessions.ColUserID,
		"Visit date": sessions.ColDate,
	}

	set, err := source.Parse(strings.NewReader(csvData), mapping)
	require.NoError(t, err)

	assert.True(t, set.HasColumn(sessions.ColUserID))
	assert.True(t, set.HasColumn(sessions.ColDate))
	assert.Equal(t, "u1", set.Rows[0][sessions.ColUserID])
}

func TestParsePadsShortRows(t *testing.T) {
	csvData := "Clarity user ID,Date,Country\nu1,01/06/2024\n"

	set, err := source.Parse(strings.NewReader(csvData), source.ColumnMapping{})
	require.NoError(t, err)
	require.Len(t, set.Rows, 1)
	assert.Equal(t, "", set.Rows[0][sessions.ColCountry])
}

func TestParseTrimsHeaderWhitespace(t *testing.T) {
	csvData := " Clarity user ID , Date \nu1,01/06/2024\n"

	set, err := source.Parse(strings.NewReader(csvData), source.ColumnMapping{})
	require.NoError(t, err)
	assert.True(t, set.HasColumn(sessions.ColUserID))
	assert.True(t, set.HasColumn(sessions.ColDate))
}

func TestParseEmptyFeed(t *testing.T) {
	_, err := source.Parse(strings.NewReader(""), source.ColumnMapping{})
	assert.ErrorContains(t, err, "empty")
}

func TestParseHeaderOnly(t *testing.T) {
	set, err := source.Parse(strings.NewReader("Clarity user ID,Date\n"), source.ColumnMapping{})
	require.NoError(t, err)
	assert.Empty(t, set.Rows)
}

func TestFromFile(t *testing.T) {
	path := testsupport.WriteCSV(t, "Clarity user ID,Date\nu1,01/06/2024\n")

	set, err := source.FromFile(path, source.ColumnMapping{})
	require.NoError(t, err)
	assert.Len(t, set.Rows, 1)
}

func TestFromFileMissing(t *testing.T) {
	_, err := source.FromFile(filepath.Join(t.TempDir(), "nope.csv"), source.ColumnMapping{})
	assert.ErrorContains(t, err, "failed to open source file")
}

func TestFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Clarity user ID,Date\nu1,01/06/2024\n")
	}))
	defer server.Close()

	set, err := source.FromURL(context.Background(), server.URL, source.ColumnMapping{})
	require.NoError(t, err)
	assert.Len(t, set.Rows, 1)
}

func TestFromURLNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := source.FromURL(context.Background(), server.URL, source.ColumnMapping{})
	assert.ErrorContains(t, err, "status 403")
}

func TestLoadColumnMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yml")
	content := "User ID: Clarity user ID\nVisit date: Date\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mapping, err := source.LoadColumnMapping(path)
	require.NoError(t, err)
	assert.Equal(t, sessions.ColUserID, mapping.Canonical("User ID"))
	assert.Equal(t, sessions.ColDate, mapping.Canonical("Visit date"))
	assert.Equal(t, "Untouched", mapping.Canonical("Untouched"))
}

func TestLoadColumnMappingEmptyPath(t *testing.T) {
	mapping, err := source.LoadColumnMapping("")
	require.NoError(t, err)
	assert.Empty(t, mapping)
}

func TestLoadColumnMappingBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - broken"), 0o644))

	_, err := source.LoadColumnMapping(path)
	assert.ErrorContains(t, err, "failed to parse column mapping file")
}
