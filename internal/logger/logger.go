// Package logger builds the application slog.Logger from configuration.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"clarityboard/internal/config"
)

// New returns a logger configured from the application settings. In
// production the output is JSON appended to a size-rotated file under the
// logs directory; everywhere else it is a text handler on stderr.
func New(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(cfg.LogLevel)}

	if cfg.IsProduction() {
		writer := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogsDirectory, cfg.AppName+".log"),
			MaxSize:    cfg.LogsMaxSizeInMb,
			MaxBackups: cfg.LogsMaxBackups,
			MaxAge:     cfg.LogsMaxAgeInDays,
			Compress:   true,
		}
		return slog.New(slog.NewJSONHandler(writer, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// NewWithWriter returns a text logger on the given writer; intended for
// tests and CLI output capture.
func NewWithWriter(w io.Writer, lvl config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level(lvl)}))
}

func level(lvl config.LogLevel) slog.Level {
	switch lvl {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
