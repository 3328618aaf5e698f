package logging

import (
	"log/slog"
	"os"
)

// SetDefaultStructuredLogger installs a JSON slog logger as the process
// default, tagged with the component name and version. The level comes from
// the LOG_LEVEL environment variable and defaults to info.
func SetDefaultStructuredLogger(name, version string) {
	level := slog.LevelInfo
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			level = slog.LevelInfo
		}
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(
		slog.String("name", name),
		slog.String("version", version),
	)
	slog.SetDefault(logger)
}
