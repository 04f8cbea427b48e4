// Package log configures the zerolog logger used for diagnostics.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// New creates a logger writing to w. Pretty output is a human readable
// console format without timestamps; colours are used only when w is a
// terminal.
func New(w io.Writer, cfg Config) zerolog.Logger {
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{
			Out:          w,
			NoColor:      !isTerminal(w),
			PartsExclude: []string{zerolog.TimestampFieldName},
		}
	}
	return zerolog.New(w).Level(ParseLevel(cfg.Level))
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back
// to warn so that a successful run stays silent.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
