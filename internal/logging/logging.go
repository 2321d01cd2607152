// Package logging builds the zerolog logger used for diagnostics.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.WarnLevel

// New returns a console logger writing to w.
// debug forces the debug level; otherwise level is parsed, falling back to DefaultLevel.
func New(w io.Writer, level string, debug bool) zerolog.Logger {
	lvl := ParseLevel(level)
	if debug {
		lvl = zerolog.DebugLevel
	}

	cw := zerolog.NewConsoleWriter()
	cw.Out = w
	cw.NoColor = true
	cw.TimeFormat = time.TimeOnly

	return zerolog.New(cw).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty names
// return DefaultLevel.
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}
