package repository

import (
	"time"

	"github.com/yukikurage/habit-tracker-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task owned by the user, with optional preloading
	FindByID(id, userID uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks matching the filter, schedulers and categories
	// eagerly attached
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task owned by the user
	Delete(id, userID uint64) error
}

// TaskFilter holds filtering options for listing tasks. OverlapFrom and
// OverlapTo select tasks whose [start_date, end_date] intersects the
// closed window (end_date >= from AND start_date <= to).
type TaskFilter struct {
	UserID           uint64
	TaskID           *uint64
	CategoryID       *uint64
	OverlapFrom      *time.Time
	OverlapTo        *time.Time
	RequireScheduler bool
	Page             int
	PageSize         int
}

// DoneTaskRepository defines the interface for completion-record data access
type DoneTaskRepository interface {
	// Create inserts a completion record; the (task_id, date) uniqueness
	// violation surfaces as gorm.ErrDuplicatedKey
	Create(done *models.DoneTask) error

	// FindByID finds a completion record with its task relations attached
	FindByID(id uint64) (*models.DoneTask, error)

	// Update persists changes to a completion record
	Update(done *models.DoneTask) error

	// ListForTasks returns the completion records of the given tasks whose
	// date falls inside [from, to], tasks eagerly attached
	ListForTasks(taskIDs []uint64, from, to time.Time) ([]models.DoneTask, error)
}

// SchedulerRepository defines the interface for scheduler data access
type SchedulerRepository interface {
	Create(scheduler *models.Scheduler) error
	FindByID(id, userID uint64) (*models.Scheduler, error)
	ListByUser(userID uint64, page, pageSize int) ([]models.Scheduler, int64, error)
	Update(scheduler *models.Scheduler) error
	Delete(id, userID uint64) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id, userID uint64) (*models.Category, error)
	ListByUser(userID uint64, page, pageSize int) ([]models.Category, int64, error)
	Update(category *models.Category) error
	Delete(id, userID uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint64) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
}
