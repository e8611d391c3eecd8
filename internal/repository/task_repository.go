package repository

import (
	"github.com/yukikurage/habit-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task owned by the user, with optional preloading
func (r *GormTaskRepository) FindByID(id, userID uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db.Where("tasks.user_id = ?", userID)

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks matching the filter. Scheduler and Category are
// always preloaded so occurrence resolution never needs a second trip per
// task.
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).Where("tasks.user_id = ?", filter.UserID)

	if filter.TaskID != nil {
		query = query.Where("tasks.id = ?", *filter.TaskID)
	}
	if filter.CategoryID != nil {
		query = query.Where("tasks.category_id = ?", *filter.CategoryID)
	}
	if filter.OverlapFrom != nil {
		query = query.Where("tasks.end_date >= ?", *filter.OverlapFrom)
	}
	if filter.OverlapTo != nil {
		query = query.Where("tasks.start_date <= ?", *filter.OverlapTo)
	}
	if filter.RequireScheduler {
		query = query.Where("tasks.scheduler_id IS NOT NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("tasks.start_date ASC, tasks.id ASC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	if err := listQuery.Preload("Scheduler").Preload("Category").Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task owned by the user together with its completion
// records
func (r *GormTaskRepository) Delete(id, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("task_id = ?", id).Delete(&models.DoneTask{}).Error
	})
}
