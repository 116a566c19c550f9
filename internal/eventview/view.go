package eventview

import (
	"sort"
	"time"
)

// Policy names the boundary used when deciding whether an event is still
// upcoming. Call sites used to disagree silently about this boundary; every
// caller now picks a policy explicitly.
type Policy int

const (
	// PolicyNotYetStarted keeps events whose instant is at or after the
	// reference instant.
	PolicyNotYetStarted Policy = iota
	// PolicyTodayInclusive keeps events on the reference calendar date or
	// later, even if their start time has already passed.
	PolicyTodayInclusive
)

// Direction is a sort direction for SortByWhen.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ListUpcoming filters events to those still upcoming under the given policy.
// Records whose date/time fail to parse are excluded and reported; the
// returned slice is otherwise unchanged (no reordering).
func ListUpcoming[T Event](events []T, ref time.Time, loc *time.Location, policy Policy) ([]T, []ParseError) {
	ref = ref.In(loc)
	startOfDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)

	out := make([]T, 0, len(events))
	var parseErrs []ParseError
	for i, e := range events {
		when, err := When(e, loc)
		if err != nil {
			parseErrs = append(parseErrs, ParseError{Index: i, Err: err})
			continue
		}

		var keep bool
		switch policy {
		case PolicyTodayInclusive:
			keep = !when.Before(startOfDay)
		default:
			keep = !when.Before(ref)
		}
		if keep {
			out = append(out, e)
		}
	}
	return out, parseErrs
}

// SortByWhen orders events by their combined date+time instant. The sort is
// stable: ties keep their input order, so repeated renders are deterministic.
// Records that fail to parse sort after all valid ones, keeping their own
// relative order.
func SortByWhen[T Event](events []T, loc *time.Location, dir Direction) []T {
	type keyed struct {
		event T
		when  time.Time
		bad   bool
	}

	keys := make([]keyed, len(events))
	for i, e := range events {
		when, err := When(e, loc)
		keys[i] = keyed{event: e, when: when, bad: err != nil}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].bad || keys[j].bad {
			return !keys[i].bad && keys[j].bad
		}
		if dir == Descending {
			return keys[i].when.After(keys[j].when)
		}
		return keys[i].when.Before(keys[j].when)
	})

	out := make([]T, len(keys))
	for i, k := range keys {
		out[i] = k.event
	}
	return out
}

// DateGroup is one calendar date's worth of events, in input order.
type DateGroup[T Event] struct {
	// Date is the raw ISO date shared by every event in the group.
	Date string `json:"date"`
	// Label is the human-readable heading, e.g. "Saturday, 7 June 2025".
	Label string `json:"label"`
	// Events are the group's records in the order they appeared.
	Events []T `json:"events"`
}

// GroupByCalendarDate partitions events by their date alone (time is
// ignored). Groups appear in order of first appearance, so grouping a sorted
// slice yields chronologically ordered groups. Every input record lands in
// exactly one group. Events whose date fails to parse are grouped under
// their raw date string with the label left equal to it.
func GroupByCalendarDate[T Event](events []T, loc *time.Location) []DateGroup[T] {
	groups := make([]DateGroup[T], 0)
	index := make(map[string]int)

	for _, e := range events {
		date := e.EventDate()
		i, ok := index[date]
		if !ok {
			label := date
			if d, err := time.ParseInLocation(dateLayout, date, loc); err == nil {
				label = d.Format("Monday, 2 January 2006")
			}
			index[date] = len(groups)
			groups = append(groups, DateGroup[T]{Date: date, Label: label})
			i = len(groups) - 1
		}
		groups[i].Events = append(groups[i].Events, e)
	}

	return groups
}

// FilterByField keeps items whose field value exactly equals value
// (case-sensitive). An empty value means no filter.
func FilterByField[T any](items []T, field func(T) string, value string) []T {
	if value == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if field(it) == value {
			out = append(out, it)
		}
	}
	return out
}

// LimitLatest returns the n most recent events, most recent first. If fewer
// than n exist, all are returned.
func LimitLatest[T Event](events []T, loc *time.Location, n int) []T {
	if n <= 0 {
		return []T{}
	}
	sorted := SortByWhen(events, loc, Descending)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
