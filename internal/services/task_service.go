package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/habit-tracker-api/internal/models"
	"github.com/yukikurage/habit-tracker-api/internal/occurrence"
	"github.com/yukikurage/habit-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTitleRequired     = errors.New("title is required")
	ErrDatesIncorrect    = occurrence.ErrDatesIncorrect
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrSchedulerNotFound = errors.New("scheduler not found")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo      repository.TaskRepository
	categoryRepo  repository.CategoryRepository
	schedulerRepo repository.SchedulerRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, categoryRepo repository.CategoryRepository, schedulerRepo repository.SchedulerRepository) *TaskService {
	return &TaskService{
		taskRepo:      taskRepo,
		categoryRepo:  categoryRepo,
		schedulerRepo: schedulerRepo,
	}
}

// TaskInput represents input for creating or fully updating a task
type TaskInput struct {
	Title        string
	CategoryID   *uint64
	SchedulerID  *uint64
	StartDate    time.Time
	EndDate      time.Time
	Quantity     int
	QuantityUnit string
}

// ListTasks returns a page of the user's tasks with schedulers and
// categories attached
func (s *TaskService) ListTasks(userID uint64, page, pageSize int) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.List(repository.TaskFilter{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// GetTask returns one of the user's tasks with related data
func (s *TaskService) GetTask(taskID, userID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, userID, "Category", "Scheduler")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask creates a task after validating its fields and that the
// referenced category and scheduler belong to the user
func (s *TaskService) CreateTask(userID uint64, input TaskInput) (*models.Task, error) {
	if err := s.validateInput(userID, &input); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:        input.Title,
		UserID:       userID,
		CategoryID:   input.CategoryID,
		SchedulerID:  input.SchedulerID,
		StartDate:    occurrence.Date(input.StartDate),
		EndDate:      occurrence.Date(input.EndDate),
		Quantity:     input.Quantity,
		QuantityUnit: input.QuantityUnit,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, userID, "Category", "Scheduler")
}

// UpdateTask replaces all mutable fields of a task
func (s *TaskService) UpdateTask(taskID, userID uint64, input TaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.validateInput(userID, &input); err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.CategoryID = input.CategoryID
	task.SchedulerID = input.SchedulerID
	task.StartDate = occurrence.Date(input.StartDate)
	task.EndDate = occurrence.Date(input.EndDate)
	task.Quantity = input.Quantity
	task.QuantityUnit = input.QuantityUnit

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, userID, "Category", "Scheduler")
}

// DeleteTask removes a task and its completion records
func (s *TaskService) DeleteTask(taskID, userID uint64) error {
	if err := s.taskRepo.Delete(taskID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) validateInput(userID uint64, input *TaskInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return ErrTitleRequired
	}
	if occurrence.Date(input.StartDate).After(occurrence.Date(input.EndDate)) {
		return ErrDatesIncorrect
	}
	if input.Quantity < 0 {
		return ErrNegativeQuantity
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*input.CategoryID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("failed to verify category: %w", err)
		}
	}
	if input.SchedulerID != nil {
		if _, err := s.schedulerRepo.FindByID(*input.SchedulerID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSchedulerNotFound
			}
			return fmt.Errorf("failed to verify scheduler: %w", err)
		}
	}

	return nil
}
