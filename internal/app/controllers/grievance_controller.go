package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smart-beneficiary/sbms/internal/app/models/dto"
	"github.com/smart-beneficiary/sbms/internal/app/services"
	"github.com/smart-beneficiary/sbms/internal/middleware"
)

// GrievanceController handles grievance operations
type GrievanceController struct {
	grievanceService *services.GrievanceService
}

// NewGrievanceController creates a new GrievanceController
func NewGrievanceController(grievanceService *services.GrievanceService) *GrievanceController {
	return &GrievanceController{
		grievanceService: grievanceService,
	}
}

// CreateGrievance files a grievance for a citizen
// @Summary Raise grievance
// @Tags grievances
// @Accept json
// @Produce json
// @Param id path int true "Citizen ID"
// @Param request body dto.CreateGrievanceRequest true "Grievance"
// @Success 201 {object} dto.APIResponse{data=models.Grievance} "Grievance raised"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Citizen or scheme not found"
// @Router /citizens/{id}/grievances [post]
func (c *GrievanceController) CreateGrievance(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	var req dto.CreateGrievanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	grievance, err := c.grievanceService.Raise(ctx, citizenID, req.SchemeID, req.Complaint)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      grievance,
		Timestamp: time.Now(),
	})
}

// ListGrievances retrieves a citizen's grievances
// @Summary List citizen grievances
// @Tags grievances
// @Produce json
// @Param id path int true "Citizen ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Grievance} "Grievances retrieved"
// @Failure 404 {object} dto.ErrorResponse "Citizen not found"
// @Router /citizens/{id}/grievances [get]
func (c *GrievanceController) ListGrievances(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	grievances, err := c.grievanceService.ListByCitizen(ctx, citizenID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grievances,
		Timestamp: time.Now(),
	})
}

// ResolveGrievance closes an open grievance
// @Summary Resolve grievance
// @Tags grievances
// @Accept json
// @Produce json
// @Param id path int true "Grievance ID"
// @Param request body dto.ResolveGrievanceRequest true "Resolution"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Grievance resolved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Grievance not found"
// @Failure 409 {object} dto.ErrorResponse "Grievance already resolved"
// @Router /grievances/{id}/resolve [put]
func (c *GrievanceController) ResolveGrievance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grievance ID")))
		return
	}

	var req dto.ResolveGrievanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	if err := c.grievanceService.Resolve(ctx, id, req.AdminRemark); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Grievance resolved"},
		Timestamp: time.Now(),
	})
}
