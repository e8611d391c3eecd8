package repository

import (
	"github.com/yukikurage/habit-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormSchedulerRepository is a GORM implementation of SchedulerRepository
type GormSchedulerRepository struct {
	db *gorm.DB
}

// NewSchedulerRepository creates a new SchedulerRepository
func NewSchedulerRepository(db *gorm.DB) SchedulerRepository {
	return &GormSchedulerRepository{db: db}
}

// Create inserts a scheduler. Both unique constraints (title per user and
// day-mask per user) surface as gorm.ErrDuplicatedKey.
func (r *GormSchedulerRepository) Create(scheduler *models.Scheduler) error {
	return r.db.Create(scheduler).Error
}

// FindByID finds a scheduler owned by the user
func (r *GormSchedulerRepository) FindByID(id, userID uint64) (*models.Scheduler, error) {
	var scheduler models.Scheduler
	if err := r.db.Where("user_id = ?", userID).First(&scheduler, id).Error; err != nil {
		return nil, err
	}
	return &scheduler, nil
}

// ListByUser lists the user's schedulers
func (r *GormSchedulerRepository) ListByUser(userID uint64, page, pageSize int) ([]models.Scheduler, int64, error) {
	var schedulers []models.Scheduler

	query := r.db.Model(&models.Scheduler{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("id ASC")
	if page > 0 && pageSize > 0 {
		listQuery = listQuery.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	if err := listQuery.Find(&schedulers).Error; err != nil {
		return nil, 0, err
	}

	return schedulers, total, nil
}

// Update updates a scheduler
func (r *GormSchedulerRepository) Update(scheduler *models.Scheduler) error {
	return r.db.Save(scheduler).Error
}

// Delete removes a scheduler; tasks referencing it keep running with a
// nulled scheduler_id (no cascade)
func (r *GormSchedulerRepository) Delete(id, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("scheduler_id = ?", id).
			Update("scheduler_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Scheduler{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
