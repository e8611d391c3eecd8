package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/habit-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/habit-tracker-api/internal/errors"
	"github.com/yukikurage/habit-tracker-api/internal/middleware"
	"github.com/yukikurage/habit-tracker-api/internal/services"
	"github.com/yukikurage/habit-tracker-api/internal/utils"
)

// SchedulerHandler coordinates weekly-schedule CRUD endpoints.
type SchedulerHandler struct {
	schedulerService *services.SchedulerService
}

// NewSchedulerHandler creates a new SchedulerHandler
func NewSchedulerHandler(schedulerService *services.SchedulerService) *SchedulerHandler {
	return &SchedulerHandler{schedulerService: schedulerService}
}

// SchedulerRequest is the request body for creating or updating a scheduler
type SchedulerRequest struct {
	Title     string `json:"title" binding:"required"`
	Monday    bool   `json:"monday"`
	Tuesday   bool   `json:"tuesday"`
	Wednesday bool   `json:"wednesday"`
	Thursday  bool   `json:"thursday"`
	Friday    bool   `json:"friday"`
	Saturday  bool   `json:"saturday"`
	Sunday    bool   `json:"sunday"`
}

func (r SchedulerRequest) toInput() services.SchedulerInput {
	return services.SchedulerInput{
		Title:     r.Title,
		Monday:    r.Monday,
		Tuesday:   r.Tuesday,
		Wednesday: r.Wednesday,
		Thursday:  r.Thursday,
		Friday:    r.Friday,
		Saturday:  r.Saturday,
		Sunday:    r.Sunday,
	}
}

// ListSchedulers returns the current user's schedulers, paginated
func (h *SchedulerHandler) ListSchedulers(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	schedulers, total, err := h.schedulerService.ListSchedulers(userID, params.Page, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch schedulers")
		return
	}

	dtos := make([]dto.SchedulerDTO, len(schedulers))
	for i, s := range schedulers {
		dtos[i] = dto.ToSchedulerDTO(s)
	}

	c.JSON(http.StatusOK, gin.H{
		"schedulers":  dtos,
		"page":        params.Page,
		"page_size":   params.Limit,
		"total_count": total,
	})
}

// GetScheduler returns a specific scheduler by ID
func (h *SchedulerHandler) GetScheduler(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	schedulerID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	scheduler, err := h.schedulerService.GetScheduler(schedulerID, userID)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSchedulerDTO(*scheduler))
}

// CreateScheduler creates a new scheduler
func (h *SchedulerHandler) CreateScheduler(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req SchedulerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	scheduler, err := h.schedulerService.CreateScheduler(userID, req.toInput())
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSchedulerDTO(*scheduler))
}

// UpdateScheduler replaces a scheduler's title and day-mask
func (h *SchedulerHandler) UpdateScheduler(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	schedulerID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var req SchedulerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	scheduler, err := h.schedulerService.UpdateScheduler(schedulerID, userID, req.toInput())
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSchedulerDTO(*scheduler))
}

// DeleteScheduler removes a scheduler; referencing tasks keep running
// without one
func (h *SchedulerHandler) DeleteScheduler(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	schedulerID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.schedulerService.DeleteScheduler(schedulerID, userID); err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Scheduler deleted successfully"})
}

// respondSchedulerError maps scheduler service errors to HTTP responses
func respondSchedulerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSchedulerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSchedulerExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
