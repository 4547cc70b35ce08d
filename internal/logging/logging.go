package logging

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger.
func New() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h)
}
