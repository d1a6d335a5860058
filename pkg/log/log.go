// Package log sets up the loggers used by jigsaw programs.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

// New returns a zerolog logger writing JSON to stderr when JIGSAW_LOG_FORMAT
// is "json" and to a console writer on stdout otherwise. The level is read
// from JIGSAW_LOG_LEVEL and defaults to info.
func New() *zerolog.Logger {
	var output io.Writer
	if os.Getenv("JIGSAW_LOG_FORMAT") == "json" {
		output = os.Stderr
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}
	}
	return NewWithWriter(output, Level())
}

// NewWithWriter returns a timestamped zerolog logger writing to w.
func NewWithWriter(w io.Writer, level zerolog.Level) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &logger
}

// Level parses JIGSAW_LOG_LEVEL. Besides the zerolog level names, "v1" and
// "v2" enable logr verbosity 1 and 2, which is where composites log
// construction and per-component computation.
func Level() zerolog.Level {
	switch strings.ToLower(os.Getenv("JIGSAW_LOG_LEVEL")) {
	case "v2":
		return zerolog.TraceLevel
	case "v1", "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logr bridges l to logr, the interface jigsaw.WithLogr expects.
func Logr(l *zerolog.Logger) logr.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	zerologr.SetMaxV(2)
	return zerologr.New(l)
}
