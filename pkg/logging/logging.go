package logging

import (
	"log/slog"
	"os"
)

// SetupLogger installs the default slog logger. Logs go to stderr so stdout
// stays reserved for the JSON payload. LOG_LEVEL overrides the default level.
func SetupLogger() error {
	logLevel := slog.LevelInfo
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if err := logLevel.UnmarshalText([]byte(levelStr)); err != nil {
			slog.Error("Error parsing log level", "error", err)
			return err
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logLevel}))
	slog.SetDefault(logger)
	return nil
}
