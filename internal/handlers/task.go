package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/habit-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/habit-tracker-api/internal/errors"
	"github.com/yukikurage/habit-tracker-api/internal/middleware"
	"github.com/yukikurage/habit-tracker-api/internal/services"
	"github.com/yukikurage/habit-tracker-api/internal/utils"
)

// TaskHandler coordinates task CRUD endpoints.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest is the request body for creating or updating a task
type TaskRequest struct {
	Title        string  `json:"title" binding:"required"`
	CategoryID   *uint64 `json:"category_id"`
	SchedulerID  *uint64 `json:"scheduler_id"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      string  `json:"end_date" binding:"required"`
	Quantity     int     `json:"quantity"`
	QuantityUnit string  `json:"quantity_unit"`
}

func (r TaskRequest) toInput() (services.TaskInput, error) {
	start, err := time.Parse(dto.DateFormat, r.StartDate)
	if err != nil {
		return services.TaskInput{}, errors.New("invalid start_date: expected " + dto.DateFormat)
	}
	end, err := time.Parse(dto.DateFormat, r.EndDate)
	if err != nil {
		return services.TaskInput{}, errors.New("invalid end_date: expected " + dto.DateFormat)
	}
	return services.TaskInput{
		Title:        r.Title,
		CategoryID:   r.CategoryID,
		SchedulerID:  r.SchedulerID,
		StartDate:    start,
		EndDate:      end,
		Quantity:     r.Quantity,
		QuantityUnit: r.QuantityUnit,
	}, nil
}

// ListTasks returns the current user's tasks, paginated
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.ListTasks(userID, params.Page, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Tasks:      dto.ToTaskDTOs(tasks),
		Page:       params.Page,
		PageSize:   params.Limit,
		TotalCount: total,
	})
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.GetTask(taskID, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.CreateTask(userID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask replaces all mutable fields of a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.UpdateTask(taskID, userID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task together with its completion records
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.taskService.DeleteTask(taskID, userID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// respondTaskError maps task service errors to HTTP responses
func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrSchedulerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrDatesIncorrect),
		errors.Is(err, services.ErrNegativeQuantity):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
