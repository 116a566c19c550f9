// Package eventview derives display-ready views from event records: combining
// the stored date and time strings into comparable instants, filtering out
// expired events, stable ordering, calendar-date grouping and latest-N
// previews. All functions are pure; they never perform I/O.
package eventview

import (
	"fmt"
	"time"
)

// Event is any record carrying a calendar date and a local clock time.
// Dates are ISO 8601 ("2006-01-02"), times are 24h clock ("15:04"). No
// timezone is stored; values are interpreted in the venue's location.
type Event interface {
	EventDate() string
	EventTime() string
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// When combines an event's date and time into a single instant in loc.
// An empty time means the start of the day.
func When(e Event, loc *time.Location) (time.Time, error) {
	date := e.EventDate()
	if date == "" {
		return time.Time{}, fmt.Errorf("event has no date")
	}
	clock := e.EventTime()
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event date/time %q %q: %w", date, e.EventTime(), err)
	}
	return t, nil
}

// ValidDate reports whether s is a well-formed ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidClock reports whether s is a well-formed 24h "HH:MM" time.
func ValidClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ParseError reports a record whose date/time could not be combined into an
// instant. Such records are excluded from derived views, never silently
// included.
type ParseError struct {
	// Index is the record's position in the input slice.
	Index int
	Err   error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }
