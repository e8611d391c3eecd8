package dto

import (
	"time"

	"github.com/yukikurage/habit-tracker-api/internal/models"
)

// DateFormat is the wire format for calendar dates
const DateFormat = "2006-01-02"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// CategoryDTO represents a category in API responses
type CategoryDTO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

// SchedulerDTO represents a weekly schedule in API responses
type SchedulerDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Monday    bool   `json:"monday"`
	Tuesday   bool   `json:"tuesday"`
	Wednesday bool   `json:"wednesday"`
	Thursday  bool   `json:"thursday"`
	Friday    bool   `json:"friday"`
	Saturday  bool   `json:"saturday"`
	Sunday    bool   `json:"sunday"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID           uint64        `json:"id"`
	Title        string        `json:"title"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Quantity     int           `json:"quantity"`
	QuantityUnit string        `json:"quantity_unit,omitempty"`
	Category     *CategoryDTO  `json:"category,omitempty"`
	Scheduler    *SchedulerDTO `json:"scheduler,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO `json:"tasks"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToCategoryDTO converts a Category model to CategoryDTO
func ToCategoryDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:    category.ID,
		Title: category.Title,
	}
}

// ToSchedulerDTO converts a Scheduler model to SchedulerDTO
func ToSchedulerDTO(scheduler models.Scheduler) SchedulerDTO {
	return SchedulerDTO{
		ID:        scheduler.ID,
		Title:     scheduler.Title,
		Monday:    scheduler.Monday,
		Tuesday:   scheduler.Tuesday,
		Wednesday: scheduler.Wednesday,
		Thursday:  scheduler.Thursday,
		Friday:    scheduler.Friday,
		Saturday:  scheduler.Saturday,
		Sunday:    scheduler.Sunday,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		StartDate:    task.StartDate.Format(DateFormat),
		EndDate:      task.EndDate.Format(DateFormat),
		Quantity:     task.Quantity,
		QuantityUnit: task.QuantityUnit,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
	if task.Category != nil {
		category := ToCategoryDTO(*task.Category)
		dto.Category = &category
	}
	if task.Scheduler != nil {
		scheduler := ToSchedulerDTO(*task.Scheduler)
		dto.Scheduler = &scheduler
	}
	return dto
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
