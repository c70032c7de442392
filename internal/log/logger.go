// SPDX-License-Identifier: MIT

// Package log builds the structured logger used by the mds CLI.
// Library packages never log; only cmd/mds does.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/mds/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout of pretty output.
const TimeFormat = "15:04:05.000"

// NewWithWriter creates a logger that writes to w in the given format.
// Anything other than LogFormatJSON produces human-readable console output.
func NewWithWriter(w io.Writer, format config.LogFormat, level string) zerolog.Logger {
	out := w
	if format != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: TimeFormat, NoColor: !isTerminal(w)}
	}

	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel maps DEBUG, INFO, WARN(ING), ERROR and DISABLED onto zerolog
// levels. Unknown values fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
