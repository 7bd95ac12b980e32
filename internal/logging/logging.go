package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// TimeKey replaces slog's default "time" key in every record.
const TimeKey = "ts"

// New returns a JSON slog.Logger writing one object per line to w, with the
// timestamp under TimeKey rendered as RFC3339Nano in loc.
func New(w io.Writer, loc *time.Location) *slog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.String(TimeKey, a.Value.Time().In(loc).Format(time.RFC3339Nano))
			}
			return a
		},
	}))
}

// Stderr returns a Logger for the process diagnostic stream.
func Stderr(loc *time.Location) *slog.Logger {
	return New(os.Stderr, loc)
}
