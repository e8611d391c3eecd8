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

// CategoryHandler coordinates category CRUD endpoints.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest is the request body for creating or renaming a category
type CategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

// ListCategories returns the current user's categories, paginated
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	categories, total, err := h.categoryService.ListCategories(userID, params.Page, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch categories")
		return
	}

	dtos := make([]dto.CategoryDTO, len(categories))
	for i, category := range categories {
		dtos[i] = dto.ToCategoryDTO(category)
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":  dtos,
		"page":        params.Page,
		"page_size":   params.Limit,
		"total_count": total,
	})
}

// GetCategory returns a specific category by ID
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.GetCategory(categoryID, userID)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDTO(*category))
}

// CreateCategory creates a new category
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(userID, req.Title)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryDTO(*category))
}

// UpdateCategory renames a category
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(categoryID, userID, req.Title)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDTO(*category))
}

// DeleteCategory removes a category; referencing tasks keep running
// uncategorized
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.categoryService.DeleteCategory(categoryID, userID); err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// respondCategoryError maps category service errors to HTTP responses
func respondCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCategoryExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
