package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Record is the domain model for a todo entry.
// Timestamp is fixed at creation; only Description is ever edited.
type Record struct {
	Timestamp   time.Time
	Description string
}

// DisplayFormat is how timestamps are shown by the one-shot commands.
const DisplayFormat = "01-02 15:04"

var errNoSeparator = errors.New("missing tab separator")

// New stamps a record with the given time.
func New(now time.Time, description string) Record {
	return Record{Timestamp: now, Description: CleanDescription(description)}
}

// CleanDescription replaces characters that would break the line format.
func CleanDescription(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		}
		return r
	}, s)
}

// MarshalLine encodes r as "<RFC3339>\t<description>" without a newline.
func (r Record) MarshalLine() string {
	return r.Timestamp.Format(time.RFC3339Nano) + "\t" + r.Description
}

// ParseLine decodes one stored line. Only the first tab separates the fields.
func ParseLine(line string) (Record, error) {
	line = strings.TrimSuffix(line, "\r")
	stamp, desc, ok := strings.Cut(line, "\t")
	if !ok {
		return Record{}, errNoSeparator
	}
	ts, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return Record{}, fmt.Errorf("parse timestamp: %w", err)
	}
	return Record{Timestamp: ts.Local(), Description: desc}, nil
}

// Stamp formats the timestamp for listing.
func (r Record) Stamp() string {
	return r.Timestamp.Local().Format(DisplayFormat)
}
