// Package occurrence implements the recurring-task resolution core: date
// window normalization, due-date expansion against weekly schedule masks,
// merging of logged completions, and the report aggregations built on top.
// Everything here is a pure transformation over already-fetched data; no
// storage access happens inside this package.
package occurrence

import (
	"errors"
	"time"
)

var (
	// ErrDatesIncorrect signals a window whose start falls after its end.
	ErrDatesIncorrect = errors.New("date_start must not be after date_end")

	// ErrBothDatesRequired signals a report range where only one bound was
	// supplied.
	ErrBothDatesRequired = errors.New("date_from and date_to must be defined together")
)

// Window is an inclusive [Start, End] range of naive calendar dates.
type Window struct {
	Start time.Time
	End   time.Time
}

// Date strips the clock and location from t, leaving a naive calendar date
// at midnight UTC. All dates inside this package are normalized through it
// so equality and ordering work regardless of how the caller parsed them.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewWindow builds an inclusive window, failing when start is after end.
func NewWindow(start, end time.Time) (Window, error) {
	start, end = Date(start), Date(end)
	if start.After(end) {
		return Window{}, ErrDatesIncorrect
	}
	return Window{Start: start, End: end}, nil
}

// Contains reports whether d falls inside the window.
func (w Window) Contains(d time.Time) bool {
	d = Date(d)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Days returns the number of calendar days the window spans.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Overlaps reports whether a task active in [start, end] intersects the
// window. The closed/inclusive convention is used everywhere: a task whose
// range merely touches the window boundary is in scope.
func (w Window) Overlaps(start, end time.Time) bool {
	return !Date(end).Before(w.Start) && !Date(start).After(w.End)
}

// Clip narrows the window to the intersection with [start, end]. The
// second return value is false when they do not intersect at all.
func (w Window) Clip(start, end time.Time) (Window, bool) {
	start, end = Date(start), Date(end)
	if start.After(w.Start) {
		w.Start = start
	}
	if end.Before(w.End) {
		w.End = end
	}
	if w.Start.After(w.End) {
		return Window{}, false
	}
	return w, true
}

// NormalizeWindow resolves optional bounds into a concrete window for
// occurrence resolution. A single bound collapses to a single-day window
// on that bound; no bounds default to today.
func NormalizeWindow(start, end *time.Time, today time.Time) (Window, error) {
	switch {
	case start != nil && end != nil:
		return NewWindow(*start, *end)
	case start != nil:
		return NewWindow(*start, *start)
	case end != nil:
		return NewWindow(*end, *end)
	default:
		return NewWindow(today, today)
	}
}

// NormalizeReportRange resolves optional report bounds. Reports require
// either both bounds or neither; with neither, the current calendar month
// is used.
func NormalizeReportRange(from, to *time.Time, today time.Time) (Window, error) {
	if (from != nil) != (to != nil) {
		return Window{}, ErrBothDatesRequired
	}
	if from == nil {
		return MonthWindow(today), nil
	}
	return NewWindow(*from, *to)
}

// MonthWindow returns the calendar month containing anchor: the first of
// the month through the first of the next month minus one day. time.Date
// normalizes month 13, so the December to January rollover needs no
// special case.
func MonthWindow(anchor time.Time) Window {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(anchor.Year(), anchor.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return Window{Start: first, End: last}
}
