package main

import (
	"fmt"
	"log/slog"
	"os"
)

func initLogger() error {
	var level slog.Level
	switch FlagVerbose {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %s", FlagVerbose)
	}
	// Text handler on stderr so log lines never interleave with the
	// median tables on stdout.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return nil
}
