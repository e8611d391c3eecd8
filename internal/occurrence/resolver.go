package occurrence

import (
	"errors"
	"time"

	"github.com/yukikurage/habit-tracker-api/internal/models"
)

// ErrNoTasksInRange signals that no task overlaps the requested window.
// It is informational: callers may render an empty result instead of
// failing.
var ErrNoTasksInRange = errors.New("no tasks scheduled in the requested range")

// Entry is one due-occurrence of a task on a specific date, optionally
// carrying the completion logged for it. Done stays nil until a merge
// attaches one.
type Entry struct {
	Task models.Task
	Done *models.DoneTask
}

// Day holds the ordered occurrences of a single calendar date. Dates with
// nothing due still get a Day with an empty Entries slice.
type Day struct {
	Date    time.Time
	Entries []Entry
}

// Timeline is the ordered date-indexed occurrence view over a window.
type Timeline []Day

// Resolve expands the given tasks over the window: one entry per (date,
// task) pair where the date lies inside both the window and the task's own
// range and the task's scheduler marks that weekday due. Tasks without a
// scheduler never produce occurrences. Task order within a day follows the
// input order.
func Resolve(tasks []models.Task, w Window) Timeline {
	tl := make(Timeline, 0, w.Days())
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		day := Day{Date: d, Entries: []Entry{}}
		for _, t := range tasks {
			if t.Scheduler == nil {
				continue
			}
			if d.Before(Date(t.StartDate)) || d.After(Date(t.EndDate)) {
				continue
			}
			if !t.Scheduler.DueOn(d.Weekday()) {
				continue
			}
			day.Entries = append(day.Entries, Entry{Task: t})
		}
		tl = append(tl, day)
	}
	return tl
}

// DueCount returns how many dates in the window are due for the task:
// the dates inside the window clipped to the task's own range whose
// weekday the scheduler flags. Zero when the task has no scheduler or the
// ranges do not intersect.
func DueCount(t models.Task, w Window) int {
	if t.Scheduler == nil {
		return 0
	}
	clipped, ok := w.Clip(t.StartDate, t.EndDate)
	if !ok {
		return 0
	}
	count := 0
	for d := clipped.Start; !d.After(clipped.End); d = d.AddDate(0, 0, 1) {
		if t.Scheduler.DueOn(d.Weekday()) {
			count++
		}
	}
	return count
}
