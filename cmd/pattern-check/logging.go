package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// setupLogging installs the default slog logger. The level comes from
// PATTERN_CHECK_LOG_LEVEL, with PATTERN_CHECK_DEBUG=1 as a shortcut for debug.
func setupLogging(w io.Writer) error {
	level := os.Getenv("PATTERN_CHECK_LOG_LEVEL")
	if os.Getenv("PATTERN_CHECK_DEBUG") == "1" {
		level = "debug"
	}

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn", "":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevel,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}
