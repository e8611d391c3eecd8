package occurrence

import (
	"github.com/yukikurage/habit-tracker-api/internal/models"
)

// Merge attaches logged completions to their (task, date) occurrence.
// Completions whose date or task has no occurrence in the timeline are
// dropped silently: they are stale data left behind by a schedule change,
// not an error. Merging the same set twice is idempotent since each match
// overwrites the entry's Done slot.
func (tl Timeline) Merge(dones []models.DoneTask) {
	index := make(map[int64]int, len(tl))
	for i, day := range tl {
		index[day.Date.Unix()] = i
	}
	for i := range dones {
		done := dones[i]
		di, ok := index[Date(done.Date).Unix()]
		if !ok {
			continue
		}
		entries := tl[di].Entries
		for j := range entries {
			if entries[j].Task.ID == done.TaskID {
				entries[j].Done = &done
				break
			}
		}
	}
}

// FilterDone removes entries that do not match the requested done-state:
// true keeps only entries carrying a completion with IsDone set, false
// keeps only entries without one. A nil filter keeps everything.
func (tl Timeline) FilterDone(isDone *bool) {
	if isDone == nil {
		return
	}
	for i := range tl {
		kept := tl[i].Entries[:0]
		for _, e := range tl[i].Entries {
			completed := e.Done != nil && e.Done.IsDone
			if completed == *isDone {
				kept = append(kept, e)
			}
		}
		tl[i].Entries = kept
	}
}
