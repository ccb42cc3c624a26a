package internal_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clarityboard/internal"
	"clarityboard/internal/config"
	"clarityboard/internal/testsupport"
)

func testConfig(sourcePath string) *config.Config {
	return &config.Config{
		AppName:     "clarityboard",
		AppPort:     "0",
		Environment: config.Test,
		LogLevel:    config.LogLevelError,
		SourcePath:  sourcePath,
	}
}

func newLoadedApp(t *testing.T) *internal.Application {
	t.Helper()
	path := testsupport.WriteCSV(t,
		"Clarity user ID,Date,Country,Device\n"+
			"u1,01/06/2024,US,PC\n"+
			"u2,05/06/2024,DE,Mobile\n")

	app, err := internal.NewAppWithConfig(testConfig(path))
	require.NoError(t, err)
	require.NoError(t, app.LoadDataset(context.Background()))
	return app
}

func TestNewAppRequiresSource(t *testing.T) {
	_, err := internal.NewAppWithConfig(testConfig(""))
	assert.ErrorContains(t, err, "no data source configured")
}

func TestLoadDatasetFailsOnMissingFile(t *testing.T) {
	app, err := internal.NewAppWithConfig(testConfig("/nonexistent/export.csv"))
	require.NoError(t, err)
	assert.Error(t, app.LoadDataset(context.Background()))
}

func TestRoutes(t *testing.T) {
	app := newLoadedApp(t)
	server := app.Server()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/health", fiber.StatusOK},
		{"GET", "/api/v1/overview", fiber.StatusOK},
		{"GET", "/api/v1/insights", fiber.StatusOK},
		{"GET", "/api/v1/filters", fiber.StatusOK},
		{"POST", "/api/v1/refresh", fiber.StatusOK},
		{"GET", "/api/v1/unknown", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := server.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestReloadSwapsSnapshot(t *testing.T) {
	path := testsupport.WriteCSV(t, "Clarity user ID,Date\nu1,01/06/2024\n")
	app, err := internal.NewAppWithConfig(testConfig(path))
	require.NoError(t, err)
	require.NoError(t, app.LoadDataset(context.Background()))
	require.Equal(t, 1, app.Dataset().Len())

	// Grow the export and refresh through the API.
	grown := "Clarity user ID,Date\nu1,01/06/2024\nu2,02/06/2024\n"
	require.NoError(t, os.WriteFile(path, []byte(grown), 0o644))

	resp, err := app.Server().Test(httptest.NewRequest("POST", "/api/v1/refresh", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.EqualValues(t, 2, payload["sessions"])
	assert.Equal(t, 2, app.Dataset().Len())
}

func TestReloadFailureKeepsPreviousSnapshot(t *testing.T) {
	path := testsupport.WriteCSV(t, "Clarity user ID,Date\nu1,01/06/2024\n")
	app, err := internal.NewAppWithConfig(testConfig(path))
	require.NoError(t, err)
	require.NoError(t, app.LoadDataset(context.Background()))

	// Corrupt the export so the reload fails.
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	assert.Error(t, app.Reload(context.Background()))
	assert.Equal(t, 1, app.Dataset().Len())
}
