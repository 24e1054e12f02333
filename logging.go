package landing

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Log field names shared by every event the server emits.
const (
	FieldFunc      = "func"
	FieldRequestID = "request_id"
)

// NewLogger builds a zerolog logger writing to out (stderr when nil).
// format is "json" or "console"; level is a zerolog level name.
func NewLogger(level, format string, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// SetGlobalLogger installs l as the package-level zerolog logger.
func SetGlobalLogger(l zerolog.Logger) {
	log.Logger = l
}

func requestEvent(l *zerolog.Logger, status int, err error) *zerolog.Event {
	switch {
	case status >= 500:
		ev := l.Error()
		if err != nil {
			ev = ev.Err(err)
		}
		return ev
	case status >= 400:
		return l.Warn()
	default:
		return l.Info()
	}
}
