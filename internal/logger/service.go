package logger

import (
	"log/slog"
	"os"
)

// Initialize installs the default JSON logger. Log lines go to stderr;
// stdout is reserved for the rendered report.
func Initialize(level slog.Level) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)
}

func Named(name string) *slog.Logger {
	logger := slog.Default()
	if logger == nil {
		return nil
	}

	return logger.With("name", name)
}
