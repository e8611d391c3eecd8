package repository

import (
	"github.com/yukikurage/habit-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormCategoryRepository is a GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create inserts a category; a duplicate title for the user surfaces as
// gorm.ErrDuplicatedKey
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// FindByID finds a category owned by the user
func (r *GormCategoryRepository) FindByID(id, userID uint64) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("user_id = ?", userID).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListByUser lists the user's categories
func (r *GormCategoryRepository) ListByUser(userID uint64, page, pageSize int) ([]models.Category, int64, error) {
	var categories []models.Category

	query := r.db.Model(&models.Category{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("title ASC")
	if page > 0 && pageSize > 0 {
		listQuery = listQuery.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	if err := listQuery.Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

// Update updates a category
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category; tasks referencing it get a nulled
// category_id (no cascade)
func (r *GormCategoryRepository) Delete(id, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Category{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
