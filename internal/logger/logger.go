package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is printed before every console log line.
const Prefix = "todo"

// New returns the console logger. Without verbose only warnings and errors
// are shown; with verbose, debug lines with timestamps.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: verbose,
		Prefix:          Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
