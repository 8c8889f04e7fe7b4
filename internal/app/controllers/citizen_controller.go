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

// CitizenController handles citizen profile operations
type CitizenController struct {
	citizenService *services.CitizenService
}

// NewCitizenController creates a new CitizenController
func NewCitizenController(citizenService *services.CitizenService) *CitizenController {
	return &CitizenController{
		citizenService: citizenService,
	}
}

// RegisterCitizen handles citizen registration
// @Summary Register a citizen
// @Description Creates a new citizen profile. Age is never stored; it is derived from the date of birth at evaluation time.
// @Tags citizens
// @Accept json
// @Produce json
// @Param request body dto.CreateCitizenRequest true "Citizen profile"
// @Success 201 {object} dto.APIResponse{data=models.Citizen} "Citizen registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Aadhaar number already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /citizens [post]
func (c *CitizenController) RegisterCitizen(ctx *gin.Context) {
	var req dto.CreateCitizenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	citizen := &models.Citizen{
		FullName:   req.FullName,
		DOB:        dob,
		Gender:     req.Gender,
		Email:      req.Email,
		Phone:      req.Phone,
		AadhaarNo:  req.AadhaarNo,
		Address:    req.Address,
		Income:     req.Income,
		Occupation: req.Occupation,
		Education:  req.Education,
	}

	if err := c.citizenService.Register(ctx, citizen); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      citizen,
		Timestamp: time.Now(),
	})
}

// GetCitizenByID retrieves a citizen profile
// @Summary Get citizen by ID
// @Tags citizens
// @Produce json
// @Param id path int true "Citizen ID"
// @Success 200 {object} dto.APIResponse{data=models.Citizen} "Citizen retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid citizen ID"
// @Failure 404 {object} dto.ErrorResponse "Citizen not found"
// @Router /citizens/{id} [get]
func (c *CitizenController) GetCitizenByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	citizen, err := c.citizenService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      citizen,
		Timestamp: time.Now(),
	})
}

// UpdateCitizen updates a citizen profile and recomputes their eligibility
// @Summary Update citizen profile
// @Description Updates profile attributes and re-evaluates the citizen against all schemes in their interested categories. Aadhaar is immutable.
// @Tags citizens
// @Accept json
// @Produce json
// @Param id path int true "Citizen ID"
// @Param request body dto.UpdateCitizenRequest true "Updated profile"
// @Success 200 {object} dto.APIResponse{data=models.Citizen} "Citizen updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Citizen not found"
// @Router /citizens/{id} [put]
func (c *CitizenController) UpdateCitizen(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	var req dto.UpdateCitizenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	existing, err := c.citizenService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	citizen := &models.Citizen{
		ID:         id,
		FullName:   req.FullName,
		DOB:        dob,
		Gender:     req.Gender,
		Email:      req.Email,
		Phone:      req.Phone,
		AadhaarNo:  existing.AadhaarNo,
		Address:    req.Address,
		Income:     req.Income,
		Occupation: req.Occupation,
		Education:  req.Education,
	}

	if err := c.citizenService.Update(ctx, citizen); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      citizen,
		Timestamp: time.Now(),
	})
}

// DeleteCitizen removes a citizen and their dependent records
// @Summary Delete citizen
// @Description Removes the citizen together with their interests, eligibility records, applications and grievances.
// @Tags citizens
// @Produce json
// @Param id path int true "Citizen ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Citizen deleted"
// @Failure 404 {object} dto.ErrorResponse "Citizen not found"
// @Router /citizens/{id} [delete]
func (c *CitizenController) DeleteCitizen(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	if err := c.citizenService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Citizen deleted"},
		Timestamp: time.Now(),
	})
}
