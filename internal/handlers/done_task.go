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
)

// DoneTaskHandler coordinates completion-record endpoints and the
// scheduled (date-indexed occurrence) view.
type DoneTaskHandler struct {
	doneTaskService *services.DoneTaskService
}

// NewDoneTaskHandler creates a new DoneTaskHandler
func NewDoneTaskHandler(doneTaskService *services.DoneTaskService) *DoneTaskHandler {
	return &DoneTaskHandler{doneTaskService: doneTaskService}
}

// CreateDoneTask logs a completion for a task on a date
func (h *DoneTaskHandler) CreateDoneTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateDoneTaskRequest struct {
		TaskID   uint64 `json:"task_id" binding:"required"`
		Date     string `json:"date" binding:"required"`
		Quantity int    `json:"quantity"`
		IsDone   bool   `json:"is_done"`
	}

	var req CreateDoneTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		apierrors.BadRequest(c, "invalid date: expected "+dto.DateFormat)
		return
	}

	done, err := h.doneTaskService.CreateDoneTask(userID, services.CreateDoneTaskInput{
		TaskID:   req.TaskID,
		Date:     date,
		Quantity: req.Quantity,
		IsDone:   req.IsDone,
	})
	if err != nil {
		respondDoneTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDoneTaskDTO(*done, true))
}

// UpdateDoneTask edits a completion record in place
func (h *DoneTaskHandler) UpdateDoneTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	doneTaskID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	type UpdateDoneTaskRequest struct {
		Date     *string `json:"date"`
		Quantity *int    `json:"quantity"`
		IsDone   *bool   `json:"is_done"`
	}

	var req UpdateDoneTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateDoneTaskInput{
		Quantity: req.Quantity,
		IsDone:   req.IsDone,
	}
	if req.Date != nil {
		date, err := time.Parse(dto.DateFormat, *req.Date)
		if err != nil {
			apierrors.BadRequest(c, "invalid date: expected "+dto.DateFormat)
			return
		}
		input.Date = &date
	}

	done, err := h.doneTaskService.UpdateDoneTask(doneTaskID, userID, input)
	if err != nil {
		respondDoneTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDoneTaskDTO(*done, true))
}

// GetDoneTask returns a completion record with its task attached
func (h *DoneTaskHandler) GetDoneTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	doneTaskID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	done, err := h.doneTaskService.GetDoneTask(doneTaskID, userID)
	if err != nil {
		respondDoneTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDoneTaskDTO(*done, true))
}

// ListScheduled returns the date-indexed occurrence view over the
// requested window, completions merged in
func (h *DoneTaskHandler) ListScheduled(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var input services.ScheduledTasksInput
	var err error

	if input.DateStart, err = parseDateQuery(c, "date_start"); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	if input.DateEnd, err = parseDateQuery(c, "date_end"); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	if input.TaskID, err = parseUintQuery(c, "task_id"); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	if input.CategoryID, err = parseUintQuery(c, "category_id"); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	if input.IsDone, err = parseBoolQuery(c, "is_done"); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	timeline, err := h.doneTaskService.ScheduledTasks(userID, input)
	if err != nil {
		respondDoneTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": dto.ToScheduledDays(timeline)})
}

// respondDoneTaskError maps done-task service errors to HTTP responses
func respondDoneTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDoneTaskNotFound),
		errors.Is(err, services.ErrNoTasksInRange):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyLogged):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrTaskNotScheduled),
		errors.Is(err, services.ErrNotScheduledDay),
		errors.Is(err, services.ErrNegativeQuantity),
		errors.Is(err, services.ErrDatesIncorrect):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
