package logx

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// NewHandler returns a colored text handler for format "text" and a JSON
// handler for anything else.
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	if format == "text" {
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		})
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}
