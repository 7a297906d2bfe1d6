// Package logging builds the charmbracelet/log loggers used by the CLI and
// the interactive session.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

const prefix = "todo"

// ParseLevel accepts debug, info, warn, error and fatal. Empty means warn.
func ParseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a text logger writing to w.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Open appends to the log file at path. The caller closes the returned file.
func Open(path string, level log.Level) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	}), f, nil
}
