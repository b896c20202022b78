package app

import (
	"io"
	"log/slog"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the logger for one App. Diagnostics go to logW so that
// report output on stdout stays machine-readable. The global logger is left
// alone.
func newLogger(cfg *Config, logW io.Writer) *slog.Logger {
	level, ok := logLevels[cfg.LogLevel]
	if !ok {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(logW, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(logW, opts)
	}
	return slog.New(handler).With("component", "guardian")
}
