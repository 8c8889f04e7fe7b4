package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/models/dto"
	"github.com/smart-beneficiary/sbms/internal/app/services"
	"github.com/smart-beneficiary/sbms/internal/middleware"
)

// CategoryController handles beneficiary categories and citizen interests
type CategoryController struct {
	categoryService *services.CategoryService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// GetAllCategories retrieves all beneficiary categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Category} "Categories retrieved"
// @Router /categories [get]
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	categories, err := c.categoryService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      categories,
		Timestamp: time.Now(),
	})
}

// CreateCategory creates a new beneficiary category
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.APIResponse{data=models.Category} "Category created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Category name already exists"
// @Router /categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := c.categoryService.Create(ctx, category); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      category,
		Timestamp: time.Now(),
	})
}

// AddInterests registers a citizen's interest in categories
// @Summary Add category interests
// @Description Registers the citizen's interest in the given categories and evaluates them against every scheme targeting those categories. Re-adding an existing interest is a no-op success.
// @Tags interests
// @Accept json
// @Produce json
// @Param id path int true "Citizen ID"
// @Param request body dto.AddInterestsRequest true "Category IDs"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Interests recorded and eligibility evaluated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Citizen or category not found"
// @Router /citizens/{id}/interests [post]
func (c *CategoryController) AddInterests(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	var req dto.AddInterestsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	if err := c.categoryService.AddInterests(ctx, citizenID, req.CategoryIDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Interests recorded and eligibility evaluated"},
		Timestamp: time.Now(),
	})
}

// ListInterests retrieves a citizen's category interests
// @Summary List citizen interests
// @Tags interests
// @Produce json
// @Param id path int true "Citizen ID"
// @Success 200 {object} dto.APIResponse{data=[]models.CitizenCategory} "Interests retrieved"
// @Failure 404 {object} dto.ErrorResponse "Citizen not found"
// @Router /citizens/{id}/interests [get]
func (c *CategoryController) ListInterests(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	interests, err := c.categoryService.ListInterests(ctx, citizenID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      interests,
		Timestamp: time.Now(),
	})
}

// RemoveInterest removes a citizen's interest in a category
// @Summary Remove category interest
// @Description Removes the interest and purges the citizen's eligibility records for schemes targeting that category. Verdicts for other categories are untouched.
// @Tags interests
// @Produce json
// @Param id path int true "Citizen ID"
// @Param categoryId path int true "Category ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Interest removed"
// @Failure 404 {object} dto.ErrorResponse "Citizen or interest not found"
// @Router /citizens/{id}/interests/{categoryId} [delete]
func (c *CategoryController) RemoveInterest(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	categoryID, ok := parseIDParam(ctx, "categoryId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid category ID")))
		return
	}

	if err := c.categoryService.RemoveInterest(ctx, citizenID, categoryID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Interest removed"},
		Timestamp: time.Now(),
	})
}
