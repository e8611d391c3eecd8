package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/habit-tracker-api/internal/models"
	"github.com/yukikurage/habit-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCategoryExists = errors.New("a category with this title already exists")
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListCategories returns a page of the user's categories
func (s *CategoryService) ListCategories(userID uint64, page, pageSize int) ([]models.Category, int64, error) {
	categories, total, err := s.categoryRepo.ListByUser(userID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, total, nil
}

// GetCategory returns one of the user's categories
func (s *CategoryService) GetCategory(categoryID, userID uint64) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(categoryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// CreateCategory creates a category; a duplicate title for the user is a
// conflict
func (s *CategoryService) CreateCategory(userID uint64, title string) (*models.Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	category := &models.Category{
		UserID: userID,
		Title:  title,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// UpdateCategory renames a category
func (s *CategoryService) UpdateCategory(categoryID, userID uint64, title string) (*models.Category, error) {
	category, err := s.GetCategory(categoryID, userID)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	category.Title = title
	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory removes a category, nulling the reference on any task
// using it
func (s *CategoryService) DeleteCategory(categoryID, userID uint64) error {
	if err := s.categoryRepo.Delete(categoryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
