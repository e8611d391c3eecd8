package dto

import (
	"time"

	"github.com/yukikurage/habit-tracker-api/internal/models"
	"github.com/yukikurage/habit-tracker-api/internal/occurrence"
)

// DoneTaskDTO represents a completion record in API responses
type DoneTaskDTO struct {
	ID       uint64    `json:"id"`
	TaskID   uint64    `json:"task_id"`
	Date     string    `json:"date"`
	Quantity int       `json:"quantity"`
	IsDone   bool      `json:"is_done"`
	Updated  time.Time `json:"updated"`
	Task     *TaskDTO  `json:"task,omitempty"`
}

// ScheduledEntryDTO is one due-occurrence in the scheduled view. Done is
// null when nothing was logged for the pair.
type ScheduledEntryDTO struct {
	Task TaskDTO      `json:"task"`
	Done *DoneTaskDTO `json:"done"`
}

// ScheduledDayDTO groups the occurrences of one calendar date
type ScheduledDayDTO struct {
	Date    string              `json:"date"`
	Entries []ScheduledEntryDTO `json:"entries"`
}

// ToDoneTaskDTO converts a DoneTask model to DoneTaskDTO. The task
// relation is included only when it was preloaded.
func ToDoneTaskDTO(done models.DoneTask, withTask bool) DoneTaskDTO {
	dto := DoneTaskDTO{
		ID:       done.ID,
		TaskID:   done.TaskID,
		Date:     done.Date.Format(DateFormat),
		Quantity: done.Quantity,
		IsDone:   done.IsDone,
		Updated:  done.Updated,
	}
	if withTask {
		task := ToTaskDTO(done.Task)
		dto.Task = &task
	}
	return dto
}

// ToScheduledDays converts a resolved timeline to its response shape
func ToScheduledDays(timeline occurrence.Timeline) []ScheduledDayDTO {
	days := make([]ScheduledDayDTO, len(timeline))
	for i, day := range timeline {
		entries := make([]ScheduledEntryDTO, len(day.Entries))
		for j, entry := range day.Entries {
			entryDTO := ScheduledEntryDTO{Task: ToTaskDTO(entry.Task)}
			if entry.Done != nil {
				done := ToDoneTaskDTO(*entry.Done, false)
				entryDTO.Done = &done
			}
			entries[j] = entryDTO
		}
		days[i] = ScheduledDayDTO{
			Date:    day.Date.Format(DateFormat),
			Entries: entries,
		}
	}
	return days
}
