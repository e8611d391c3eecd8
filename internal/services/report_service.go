package services

import (
	"fmt"
	"time"

	"github.com/yukikurage/habit-tracker-api/internal/models"
	"github.com/yukikurage/habit-tracker-api/internal/occurrence"
	"github.com/yukikurage/habit-tracker-api/internal/repository"
)

// ReportService computes the aggregate reports. Each report fetches its
// data in at most two queries and aggregates in memory.
type ReportService struct {
	taskRepo repository.TaskRepository
	doneRepo repository.DoneTaskRepository
}

// NewReportService creates a new ReportService
func NewReportService(taskRepo repository.TaskRepository, doneRepo repository.DoneTaskRepository) *ReportService {
	return &ReportService{
		taskRepo: taskRepo,
		doneRepo: doneRepo,
	}
}

// BaseReport counts completions marked done per task title, with
// date_from < date < date_to (exclusive bounds). Both bounds or neither
// must be supplied; neither defaults to the current calendar month.
func (s *ReportService) BaseReport(userID uint64, dateFrom, dateTo *time.Time) (map[string]int, error) {
	window, err := occurrence.NormalizeReportRange(dateFrom, dateTo, time.Now())
	if err != nil {
		return nil, err
	}

	_, dones, err := s.fetch(userID, window)
	if err != nil {
		return nil, err
	}

	return occurrence.CountCompleted(dones, window), nil
}

// PercentageReport computes per-task completion percentage for the
// current calendar month
func (s *ReportService) PercentageReport(userID uint64) ([]occurrence.PercentageRow, error) {
	window := occurrence.MonthWindow(time.Now())

	tasks, dones, err := s.fetch(userID, window)
	if err != nil {
		return nil, err
	}

	return occurrence.PercentageRows(tasks, dones, window), nil
}

// QuantityReport computes required-vs-logged quantities for the month
// containing dateMonth (defaulting to the current month) over tasks with
// a positive quantity target
func (s *ReportService) QuantityReport(userID uint64, dateMonth *time.Time) ([]occurrence.QuantityRow, error) {
	anchor := time.Now()
	if dateMonth != nil {
		anchor = *dateMonth
	}
	window := occurrence.MonthWindow(anchor)

	tasks, dones, err := s.fetch(userID, window)
	if err != nil {
		return nil, err
	}

	return occurrence.QuantityRows(tasks, dones, window), nil
}

// fetch loads the user's scheduled tasks overlapping the window and their
// completion records inside it.
func (s *ReportService) fetch(userID uint64, window occurrence.Window) ([]models.Task, []models.DoneTask, error) {
	tasks, _, err := s.taskRepo.List(repository.TaskFilter{
		UserID:           userID,
		OverlapFrom:      &window.Start,
		OverlapTo:        &window.End,
		RequireScheduler: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	taskIDs := make([]uint64, len(tasks))
	for i, t := range tasks {
		taskIDs[i] = t.ID
	}

	dones, err := s.doneRepo.ListForTasks(taskIDs, window.Start, window.End)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list done tasks: %w", err)
	}

	return tasks, dones, nil
}
