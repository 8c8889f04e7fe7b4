package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/models/dto"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/app/services"
	"github.com/smart-beneficiary/sbms/internal/middleware"
	"github.com/smart-beneficiary/sbms/internal/pkg/helpers"
)

// SchemeController handles welfare scheme administration
type SchemeController struct {
	schemeService *services.SchemeService
}

// NewSchemeController creates a new SchemeController
func NewSchemeController(schemeService *services.SchemeService) *SchemeController {
	return &SchemeController{
		schemeService: schemeService,
	}
}

func schemeFromCreateRequest(req *dto.CreateSchemeRequest) *models.Scheme {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Scheme{
		Name:             req.Name,
		Description:      req.Description,
		TargetCategory:   req.TargetCategory,
		Benefits:         req.Benefits,
		OfficialLink:     req.OfficialLink,
		RegistrationLink: req.RegistrationLink,
		BenefitType:      req.BenefitType,
		State:            req.State,
		IsActive:         active,
	}
}

// CreateScheme creates a new welfare scheme
// @Summary Create scheme
// @Tags schemes
// @Accept json
// @Produce json
// @Param request body dto.CreateSchemeRequest true "Scheme"
// @Success 201 {object} dto.APIResponse{data=models.Scheme} "Scheme created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Target category not found"
// @Router /schemes [post]
func (c *SchemeController) CreateScheme(ctx *gin.Context) {
	var req dto.CreateSchemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	scheme := schemeFromCreateRequest(&req)
	if err := c.schemeService.Create(ctx, scheme); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      scheme,
		Timestamp: time.Now(),
	})
}

// GetSchemeByID retrieves a scheme
// @Summary Get scheme by ID
// @Tags schemes
// @Produce json
// @Param id path int true "Scheme ID"
// @Success 200 {object} dto.APIResponse{data=models.Scheme} "Scheme retrieved"
// @Failure 404 {object} dto.ErrorResponse "Scheme not found"
// @Router /schemes/{id} [get]
func (c *SchemeController) GetSchemeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scheme ID")))
		return
	}

	scheme, err := c.schemeService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scheme,
		Timestamp: time.Now(),
	})
}

// GetAllSchemes retrieves schemes with filters and pagination
// @Summary List schemes
// @Tags schemes
// @Produce json
// @Param search query string false "Match scheme name or description"
// @Param state query string false "Filter by state"
// @Param benefitType query string false "Filter by benefit type"
// @Param categoryId query int false "Filter by target category"
// @Param activeOnly query bool false "Only active schemes"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Schemes retrieved"
// @Router /schemes [get]
func (c *SchemeController) GetAllSchemes(ctx *gin.Context) {
	filter := repositories.SchemeFilter{
		Search:      ctx.Query("search"),
		State:       ctx.Query("state"),
		BenefitType: ctx.Query("benefitType"),
	}
	if raw := ctx.Query("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || categoryID <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid category ID")))
			return
		}
		filter.CategoryID = &categoryID
	}
	if raw := ctx.Query("activeOnly"); raw != "" {
		filter.ActiveOnly = raw == "true"
	}

	page, size := helpers.GetPaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	schemes, total, err := c.schemeService.GetAll(ctx, filter, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      schemes,
			Pagination: helpers.NewPaginationInfo(page, limit, total),
		},
		Timestamp: time.Now(),
	})
}

// UpdateScheme updates a scheme
// @Summary Update scheme
// @Tags schemes
// @Accept json
// @Produce json
// @Param id path int true "Scheme ID"
// @Param request body dto.UpdateSchemeRequest true "Updated scheme"
// @Success 200 {object} dto.APIResponse{data=models.Scheme} "Scheme updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Scheme not found"
// @Router /schemes/{id} [put]
func (c *SchemeController) UpdateScheme(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scheme ID")))
		return
	}

	var req dto.UpdateSchemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	scheme := &models.Scheme{
		ID:               id,
		Name:             req.Name,
		Description:      req.Description,
		TargetCategory:   req.TargetCategory,
		Benefits:         req.Benefits,
		OfficialLink:     req.OfficialLink,
		RegistrationLink: req.RegistrationLink,
		BenefitType:      req.BenefitType,
		State:            req.State,
		IsActive:         active,
	}

	if err := c.schemeService.Update(ctx, scheme); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scheme,
		Timestamp: time.Now(),
	})
}

// DeleteScheme removes a scheme
// @Summary Delete scheme
// @Description Removes the scheme together with its rules and all ledger rows referencing it.
// @Tags schemes
// @Produce json
// @Param id path int true "Scheme ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Scheme deleted"
// @Failure 404 {object} dto.ErrorResponse "Scheme not found"
// @Router /schemes/{id} [delete]
func (c *SchemeController) DeleteScheme(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scheme ID")))
		return
	}

	if err := c.schemeService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Scheme deleted"},
		Timestamp: time.Now(),
	})
}
