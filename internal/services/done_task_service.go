package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/habit-tracker-api/internal/models"
	"github.com/yukikurage/habit-tracker-api/internal/occurrence"
	"github.com/yukikurage/habit-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDoneTaskNotFound = errors.New("done task not found")
	ErrAlreadyLogged    = errors.New("a completion for this task and date already exists")
	ErrNotScheduledDay  = errors.New("date is not allowed by the task's schedule")
	ErrTaskNotScheduled = errors.New("task has no scheduler attached")
	ErrNoTasksInRange   = occurrence.ErrNoTasksInRange
)

// DoneTaskService handles completion-record business logic and the
// date-indexed occurrence view.
type DoneTaskService struct {
	doneRepo repository.DoneTaskRepository
	taskRepo repository.TaskRepository
}

// NewDoneTaskService creates a new DoneTaskService
func NewDoneTaskService(doneRepo repository.DoneTaskRepository, taskRepo repository.TaskRepository) *DoneTaskService {
	return &DoneTaskService{
		doneRepo: doneRepo,
		taskRepo: taskRepo,
	}
}

// CreateDoneTaskInput represents input for logging a completion
type CreateDoneTaskInput struct {
	TaskID   uint64
	Date     time.Time
	Quantity int
	IsDone   bool
}

// UpdateDoneTaskInput represents input for editing a completion
type UpdateDoneTaskInput struct {
	Date     *time.Time
	Quantity *int
	IsDone   *bool
}

// CreateDoneTask logs a completion for one of the user's tasks. The date's
// weekday must be flagged due by the task's scheduler; a second record for
// the same (task, date) pair is a recoverable conflict, not a failure.
func (s *DoneTaskService) CreateDoneTask(userID uint64, input CreateDoneTaskInput) (*models.DoneTask, error) {
	task, err := s.taskRepo.FindByID(input.TaskID, userID, "Scheduler")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.Scheduler == nil {
		return nil, ErrTaskNotScheduled
	}
	date := occurrence.Date(input.Date)
	if !task.Scheduler.DueOn(date.Weekday()) {
		return nil, ErrNotScheduledDay
	}
	if input.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	done := &models.DoneTask{
		TaskID:   task.ID,
		Date:     date,
		Quantity: input.Quantity,
		IsDone:   input.IsDone,
	}

	if err := s.doneRepo.Create(done); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLogged
		}
		return nil, fmt.Errorf("failed to create done task: %w", err)
	}

	return s.doneRepo.FindByID(done.ID)
}

// UpdateDoneTask edits a completion record in place
func (s *DoneTaskService) UpdateDoneTask(doneTaskID, userID uint64, input UpdateDoneTaskInput) (*models.DoneTask, error) {
	done, err := s.findOwned(doneTaskID, userID)
	if err != nil {
		return nil, err
	}

	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, ErrNegativeQuantity
		}
		done.Quantity = *input.Quantity
	}
	if input.IsDone != nil {
		done.IsDone = *input.IsDone
	}
	if input.Date != nil {
		done.Date = occurrence.Date(*input.Date)
	}

	if err := s.doneRepo.Update(done); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLogged
		}
		return nil, fmt.Errorf("failed to update done task: %w", err)
	}

	return s.doneRepo.FindByID(done.ID)
}

// GetDoneTask returns a completion record with its task, category and
// scheduler attached
func (s *DoneTaskService) GetDoneTask(doneTaskID, userID uint64) (*models.DoneTask, error) {
	return s.findOwned(doneTaskID, userID)
}

// ScheduledTasksInput holds the optional filters of an occurrence query
type ScheduledTasksInput struct {
	TaskID     *uint64
	CategoryID *uint64
	IsDone     *bool
	DateStart  *time.Time
	DateEnd    *time.Time
}

// ScheduledTasks resolves the user's due-occurrences over the requested
// window and merges the logged completions onto them. Exactly two storage
// queries are made up front; the expansion and merge are in-memory.
func (s *DoneTaskService) ScheduledTasks(userID uint64, input ScheduledTasksInput) (occurrence.Timeline, error) {
	window, err := occurrence.NormalizeWindow(input.DateStart, input.DateEnd, time.Now())
	if err != nil {
		return nil, err
	}

	tasks, _, err := s.taskRepo.List(repository.TaskFilter{
		UserID:           userID,
		TaskID:           input.TaskID,
		CategoryID:       input.CategoryID,
		OverlapFrom:      &window.Start,
		OverlapTo:        &window.End,
		RequireScheduler: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasksInRange
	}

	taskIDs := make([]uint64, len(tasks))
	for i, t := range tasks {
		taskIDs[i] = t.ID
	}

	dones, err := s.doneRepo.ListForTasks(taskIDs, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list done tasks: %w", err)
	}

	timeline := occurrence.Resolve(tasks, window)
	timeline.Merge(dones)
	timeline.FilterDone(input.IsDone)

	return timeline, nil
}

// findOwned loads a completion record and verifies the task behind it
// belongs to the user. Records of other users read as not found.
func (s *DoneTaskService) findOwned(doneTaskID, userID uint64) (*models.DoneTask, error) {
	done, err := s.doneRepo.FindByID(doneTaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoneTaskNotFound
		}
		return nil, fmt.Errorf("failed to find done task: %w", err)
	}
	if done.Task.UserID != userID {
		return nil, ErrDoneTaskNotFound
	}
	return done, nil
}
