package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// New creates a structured logger writing to w.
// When verbose is true the level is Debug, otherwise Warn so that normal
// runs print nothing but the report.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}))
}
