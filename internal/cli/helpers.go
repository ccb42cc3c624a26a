package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"clarityboard/internal/analytics"
	"clarityboard/internal/sessions"
	"clarityboard/internal/source"
	"clarityboard/internal/timeframe"
)

// loadDataset reads and normalizes the export named by the global flags.
func loadDataset(globals *GlobalFlags) (*sessions.Dataset, error) {
	mapping, err := source.LoadColumnMapping(globals.Map)
	if err != nil {
		return nil, err
	}

	set, err := source.FromFile(globals.File, mapping)
	if err != nil {
		return nil, err
	}

	return sessions.Normalize(set, cliLogger(globals))
}

// cliLogger returns a stderr logger; normalization warnings are shown
// only with --verbose.
func cliLogger(globals *GlobalFlags) *slog.Logger {
	var w io.Writer = io.Discard
	level := slog.LevelWarn
	if globals.Verbose {
		w = os.Stderr
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolvePeriod builds the analysis period from flags, defaulting to the
// dataset's full date range.
func resolvePeriod(from, to string, dataset *sessions.Dataset) (timeframe.Period, error) {
	return timeframe.ParsePeriod(from, to, dataset.MinDate(), dataset.MaxDate())
}

// applyFilter cuts the slice for the given period and selections.
func applyFilter(dataset *sessions.Dataset, period timeframe.Period, countries, devices []string) []sessions.Session {
	filter := analytics.Filter{Period: period, Countries: countries, Devices: devices}
	return filter.Apply(dataset)
}

func printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}
