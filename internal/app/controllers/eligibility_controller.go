package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smart-beneficiary/sbms/internal/app/models/dto"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/app/services"
	"github.com/smart-beneficiary/sbms/internal/middleware"
)

// EligibilityController exposes the evaluator's read and recompute surface
type EligibilityController struct {
	eligibilityService *services.EligibilityService
}

// NewEligibilityController creates a new EligibilityController
func NewEligibilityController(eligibilityService *services.EligibilityService) *EligibilityController {
	return &EligibilityController{
		eligibilityService: eligibilityService,
	}
}

// ListEligibleSchemes retrieves the citizen's current eligible matches
// @Summary List eligible schemes
// @Description Returns active schemes the citizen is currently eligible for, grouped by category and annotated with an advisory match score.
// @Tags eligibility
// @Produce json
// @Param id path int true "Citizen ID"
// @Param search query string false "Match scheme name or description"
// @Param state query string false "Filter by state"
// @Param benefitType query string false "Filter by benefit type"
// @Success 200 {object} dto.APIResponse{data=[]models.EligibleScheme} "Eligible schemes retrieved"
// @Failure 404 {object} dto.ErrorResponse "Citizen not found"
// @Router /citizens/{id}/eligible-schemes [get]
func (c *EligibilityController) ListEligibleSchemes(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	filter := repositories.SchemeFilter{
		Search:      ctx.Query("search"),
		State:       ctx.Query("state"),
		BenefitType: ctx.Query("benefitType"),
	}

	matches, err := c.eligibilityService.ListEligibleSchemes(ctx, citizenID, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      matches,
		Timestamp: time.Now(),
	})
}

// ListEligibility retrieves the citizen's full verdict ledger
// @Summary List eligibility ledger
// @Description Returns every stored verdict for the citizen, eligible or not, each with the single blocking reason.
// @Tags eligibility
// @Produce json
// @Param id path int true "Citizen ID"
// @Success 200 {object} dto.APIResponse{data=[]models.EligibilityRecord} "Ledger retrieved"
// @Failure 404 {object} dto.ErrorResponse "Citizen not found"
// @Router /citizens/{id}/eligibility [get]
func (c *EligibilityController) ListEligibility(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	records, err := c.eligibilityService.ListLedger(ctx, citizenID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}

// EvaluateCitizen triggers a manual recomputation of the citizen's ledger
// @Summary Re-evaluate citizen
// @Description Recomputes every verdict for the citizen against the current rule catalog. Idempotent.
// @Tags eligibility
// @Produce json
// @Param id path int true "Citizen ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Eligibility recomputed"
// @Failure 404 {object} dto.ErrorResponse "Citizen not found"
// @Router /citizens/{id}/evaluate [post]
func (c *EligibilityController) EvaluateCitizen(ctx *gin.Context) {
	citizenID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid citizen ID")))
		return
	}

	if err := c.eligibilityService.EvaluateCitizen(ctx, citizenID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Eligibility recomputed"},
		Timestamp: time.Now(),
	})
}
