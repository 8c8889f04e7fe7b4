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

// ApplicationController handles scheme application operations
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// CreateApplication submits a citizen's application to a scheme
// @Summary Apply to scheme
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Citizen ID"
// @Param request body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Citizen or scheme not found"
// @Failure 409 {object} dto.ErrorResponse "Open application already exists"
// @Router /citizens/{id}/applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	application, err := c.applicationService.Apply(ctx, citizenID, req.SchemeID, req.Remarks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// ListApplications retrieves a citizen's applications
// @Summary List citizen applications
// @Tags applications
// @Produce json
// @Param id path int true "Citizen ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved"
// @Failure 404 {object} dto.ErrorResponse "Citizen not found"
// @Router /citizens/{id}/applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	applications, err := c.applicationService.ListByCitizen(ctx, citizenID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      applications,
		Timestamp: time.Now(),
	})
}

// DecideApplication records an admin decision on an application
// @Summary Decide application
// @Description Approves or rejects a pending application.
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Decision recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application is no longer pending"
// @Router /applications/{id}/status [put]
func (c *ApplicationController) DecideApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application ID")))
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	err := c.applicationService.Decide(ctx, id, models.ApplicationStatus(req.Status), req.Remarks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Decision recorded"},
		Timestamp: time.Now(),
	})
}

// WithdrawApplication lets a citizen withdraw their pending application
// @Summary Withdraw application
// @Tags applications
// @Produce json
// @Param id path int true "Citizen ID"
// @Param applicationId path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Application withdrawn"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application is no longer pending"
// @Router /citizens/{id}/applications/{applicationId}/withdraw [put]
func (c *ApplicationController) WithdrawApplication(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	applicationID, ok := parseIDParam(ctx, "applicationId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application ID")))
		return
	}

	if err := c.applicationService.Withdraw(ctx, citizenID, applicationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Application withdrawn"},
		Timestamp: time.Now(),
	})
}
