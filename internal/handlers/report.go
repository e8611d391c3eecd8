package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/habit-tracker-api/internal/errors"
	"github.com/yukikurage/habit-tracker-api/internal/middleware"
	"github.com/yukikurage/habit-tracker-api/internal/occurrence"
	"github.com/yukikurage/habit-tracker-api/internal/services"
)

// ReportHandler coordinates the aggregate report endpoints.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// BaseReport returns a map of task title to completed count over the
// requested range (both bounds or neither)
func (h *ReportHandler) BaseReport(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	dateFrom, err := parseDateQuery(c, "date_from")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	dateTo, err := parseDateQuery(c, "date_to")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportService.BaseReport(userID, dateFrom, dateTo)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// PercentageReport returns per-task completion percentages for the
// current month
func (h *ReportHandler) PercentageReport(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	rows, err := h.reportService.PercentageReport(userID)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// QuantityReport returns required-vs-logged quantities for the requested
// month (default: current)
func (h *ReportHandler) QuantityReport(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	dateMonth, err := parseDateQuery(c, "date_month")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	rows, err := h.reportService.QuantityReport(userID, dateMonth)
	if err != nil {
		respondReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// respondReportError maps report service errors to HTTP responses
func respondReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, occurrence.ErrBothDatesRequired),
		errors.Is(err, occurrence.ErrDatesIncorrect):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
