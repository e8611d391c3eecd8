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
	ErrSchedulerExists = errors.New("a scheduler with this title or weekly pattern already exists")
)

// SchedulerService handles weekly-schedule business logic
type SchedulerService struct {
	schedulerRepo repository.SchedulerRepository
}

// NewSchedulerService creates a new SchedulerService
func NewSchedulerService(schedulerRepo repository.SchedulerRepository) *SchedulerService {
	return &SchedulerService{schedulerRepo: schedulerRepo}
}

// SchedulerInput represents input for creating or updating a scheduler
type SchedulerInput struct {
	Title     string
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

// ListSchedulers returns a page of the user's schedulers
func (s *SchedulerService) ListSchedulers(userID uint64, page, pageSize int) ([]models.Scheduler, int64, error) {
	schedulers, total, err := s.schedulerRepo.ListByUser(userID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list schedulers: %w", err)
	}
	return schedulers, total, nil
}

// GetScheduler returns one of the user's schedulers
func (s *SchedulerService) GetScheduler(schedulerID, userID uint64) (*models.Scheduler, error) {
	scheduler, err := s.schedulerRepo.FindByID(schedulerID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchedulerNotFound
		}
		return nil, fmt.Errorf("failed to find scheduler: %w", err)
	}
	return scheduler, nil
}

// CreateScheduler creates a scheduler; duplicate title or day-mask per
// user is a conflict
func (s *SchedulerService) CreateScheduler(userID uint64, input SchedulerInput) (*models.Scheduler, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	scheduler := &models.Scheduler{
		UserID:    userID,
		Title:     input.Title,
		Monday:    input.Monday,
		Tuesday:   input.Tuesday,
		Wednesday: input.Wednesday,
		Thursday:  input.Thursday,
		Friday:    input.Friday,
		Saturday:  input.Saturday,
		Sunday:    input.Sunday,
	}

	if err := s.schedulerRepo.Create(scheduler); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSchedulerExists
		}
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return scheduler, nil
}

// UpdateScheduler replaces a scheduler's title and day-mask
func (s *SchedulerService) UpdateScheduler(schedulerID, userID uint64, input SchedulerInput) (*models.Scheduler, error) {
	scheduler, err := s.GetScheduler(schedulerID, userID)
	if err != nil {
		return nil, err
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	scheduler.Title = input.Title
	scheduler.Monday = input.Monday
	scheduler.Tuesday = input.Tuesday
	scheduler.Wednesday = input.Wednesday
	scheduler.Thursday = input.Thursday
	scheduler.Friday = input.Friday
	scheduler.Saturday = input.Saturday
	scheduler.Sunday = input.Sunday

	if err := s.schedulerRepo.Update(scheduler); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSchedulerExists
		}
		return nil, fmt.Errorf("failed to update scheduler: %w", err)
	}

	return scheduler, nil
}

// DeleteScheduler removes a scheduler, nulling the reference on any task
// using it
func (s *SchedulerService) DeleteScheduler(schedulerID, userID uint64) error {
	if err := s.schedulerRepo.Delete(schedulerID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSchedulerNotFound
		}
		return fmt.Errorf("failed to delete scheduler: %w", err)
	}
	return nil
}
