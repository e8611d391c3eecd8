package repository

import (
	"time"

	"github.com/yukikurage/habit-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormDoneTaskRepository is a GORM implementation of DoneTaskRepository
type GormDoneTaskRepository struct {
	db *gorm.DB
}

// NewDoneTaskRepository creates a new DoneTaskRepository
func NewDoneTaskRepository(db *gorm.DB) DoneTaskRepository {
	return &GormDoneTaskRepository{db: db}
}

// Create inserts a completion record. The unique (task_id, date) index
// makes a duplicate insert fail with gorm.ErrDuplicatedKey, which the
// service layer turns into an already-logged conflict.
func (r *GormDoneTaskRepository) Create(done *models.DoneTask) error {
	return r.db.Create(done).Error
}

// FindByID finds a completion record with its task relations attached
func (r *GormDoneTaskRepository) FindByID(id uint64) (*models.DoneTask, error) {
	var done models.DoneTask
	err := r.db.
		Preload("Task").
		Preload("Task.Category").
		Preload("Task.Scheduler").
		First(&done, id).Error
	if err != nil {
		return nil, err
	}
	return &done, nil
}

// Update persists changes to a completion record
func (r *GormDoneTaskRepository) Update(done *models.DoneTask) error {
	return r.db.Save(done).Error
}

// ListForTasks returns the completion records of the given tasks inside
// [from, to], ordered by date
func (r *GormDoneTaskRepository) ListForTasks(taskIDs []uint64, from, to time.Time) ([]models.DoneTask, error) {
	if len(taskIDs) == 0 {
		return []models.DoneTask{}, nil
	}

	var dones []models.DoneTask
	err := r.db.
		Where("task_id IN ?", taskIDs).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Preload("Task").
		Find(&dones).Error
	if err != nil {
		return nil, err
	}
	return dones, nil
}
