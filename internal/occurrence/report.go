package occurrence

import (
	"math"

	"github.com/yukikurage/habit-tracker-api/internal/models"
)

// PercentageRow is one task's line in the percentage-completion report.
type PercentageRow struct {
	Title       string  `json:"title"`
	Required    int     `json:"required"`
	Done        int     `json:"done"`
	PercentDone float64 `json:"percent_done"`
}

// QuantityRow is one task's line in the quantity report. Remainder goes
// negative when more was logged than the target required.
type QuantityRow struct {
	Title     string `json:"title"`
	Required  int    `json:"required"`
	Done      int    `json:"done"`
	Remainder int    `json:"remainder"`
}

// CountCompleted counts completions with IsDone set whose date falls
// strictly inside the window (exclusive bounds), grouped by task title.
// Each completion must carry its Task preloaded.
func CountCompleted(dones []models.DoneTask, w Window) map[string]int {
	counts := make(map[string]int)
	for _, done := range dones {
		if !done.IsDone {
			continue
		}
		d := Date(done.Date)
		if !d.After(w.Start) || !d.Before(w.End) {
			continue
		}
		counts[done.Task.Title]++
	}
	return counts
}

// PercentageRows computes per-task completion percentage over the window:
// required due-dates against completions marked done. A task with zero
// required occurrences reports 0% rather than dividing by zero; it stays
// in the result so misconfigured ranges remain visible.
func PercentageRows(tasks []models.Task, dones []models.DoneTask, w Window) []PercentageRow {
	counts := CountCompleted(dones, w)
	rows := make([]PercentageRow, 0, len(tasks))
	for _, t := range tasks {
		required := DueCount(t, w)
		done := counts[t.Title]
		percent := 0.0
		if required > 0 {
			percent = round2(float64(done) / float64(required) * 100)
		}
		rows = append(rows, PercentageRow{
			Title:       t.Title,
			Required:    required,
			Done:        done,
			PercentDone: percent,
		})
	}
	return rows
}

// QuantityRows computes the quantitative report over the window for tasks
// with a positive quantity target: required = due-date count times the
// per-occurrence target, done = sum of logged quantities, remainder =
// required minus done.
func QuantityRows(tasks []models.Task, dones []models.DoneTask, w Window) []QuantityRow {
	sums := make(map[uint64]int, len(tasks))
	for _, done := range dones {
		if w.Contains(done.Date) {
			sums[done.TaskID] += done.Quantity
		}
	}
	rows := make([]QuantityRow, 0, len(tasks))
	for _, t := range tasks {
		if t.Quantity <= 0 {
			continue
		}
		required := DueCount(t, w) * t.Quantity
		done := sums[t.ID]
		rows = append(rows, QuantityRow{
			Title:     t.Title,
			Required:  required,
			Done:      done,
			Remainder: required - done,
		})
	}
	return rows
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
