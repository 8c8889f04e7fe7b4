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

// RuleController handles eligibility rule administration
type RuleController struct {
	ruleService *services.RuleService
}

// NewRuleController creates a new RuleController
func NewRuleController(ruleService *services.RuleService) *RuleController {
	return &RuleController{
		ruleService: ruleService,
	}
}

func ruleFromRequest(req *dto.RuleRequest) *models.Rule {
	return &models.Rule{
		SchemeID:              req.SchemeID,
		CategoryID:            req.CategoryID,
		AgeMin:                req.AgeMin,
		AgeMax:                req.AgeMax,
		Gender:                req.Gender,
		Location:              req.Location,
		MinIncome:             req.MinIncome,
		MaxIncome:             req.MaxIncome,
		EducationRequired:     req.EducationRequired,
		PensionStatus:         req.PensionStatus,
		DisabilityCert:        req.DisabilityCert,
		UnemploymentStatus:    req.UnemploymentStatus,
		BusinessTurnoverLimit: req.BusinessTurnoverLimit,
	}
}

// CreateRule adds a rule to a scheme
// @Summary Create rule
// @Description Adds an eligibility rule and re-evaluates every citizen interested in the rule's category.
// @Tags rules
// @Accept json
// @Produce json
// @Param request body dto.RuleRequest true "Rule"
// @Success 201 {object} dto.APIResponse{data=models.Rule} "Rule created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Scheme or category not found"
// @Router /rules [post]
func (c *RuleController) CreateRule(ctx *gin.Context) {
	var req dto.RuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	rule := ruleFromRequest(&req)
	if err := c.ruleService.Create(ctx, rule); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      rule,
		Timestamp: time.Now(),
	})
}

// GetRuleByID retrieves a rule
// @Summary Get rule by ID
// @Tags rules
// @Produce json
// @Param id path int true "Rule ID"
// @Success 200 {object} dto.APIResponse{data=models.Rule} "Rule retrieved"
// @Failure 404 {object} dto.ErrorResponse "Rule not found"
// @Router /rules/{id} [get]
func (c *RuleController) GetRuleByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rule ID")))
		return
	}

	rule, err := c.ruleService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rule,
		Timestamp: time.Now(),
	})
}

// GetSchemeRules retrieves all rules for a scheme
// @Summary List scheme rules
// @Tags rules
// @Produce json
// @Param id path int true "Scheme ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Rule} "Rules retrieved"
// @Failure 404 {object} dto.ErrorResponse "Scheme not found"
// @Router /schemes/{id}/rules [get]
func (c *RuleController) GetSchemeRules(ctx *gin.Context) {
	schemeID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scheme ID")))
		return
	}

	rules, err := c.ruleService.GetBySchemeID(ctx, schemeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rules,
		Timestamp: time.Now(),
	})
}

// UpdateRule updates a rule's constraints
// @Summary Update rule
// @Description Changes a rule's constraints and re-evaluates every citizen interested in its category. The scheme and category bindings are immutable.
// @Tags rules
// @Accept json
// @Produce json
// @Param id path int true "Rule ID"
// @Param request body dto.RuleRequest true "Updated rule"
// @Success 200 {object} dto.APIResponse{data=models.Rule} "Rule updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Rule not found"
// @Router /rules/{id} [put]
func (c *RuleController) UpdateRule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rule ID")))
		return
	}

	var req dto.RuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	rule := ruleFromRequest(&req)
	rule.ID = id
	if err := c.ruleService.Update(ctx, rule); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rule,
		Timestamp: time.Now(),
	})
}

// DeleteRule removes a rule
// @Summary Delete rule
// @Description Removes the rule and re-evaluates every citizen interested in its category.
// @Tags rules
// @Produce json
// @Param id path int true "Rule ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Rule deleted"
// @Failure 404 {object} dto.ErrorResponse "Rule not found"
// @Router /rules/{id} [delete]
func (c *RuleController) DeleteRule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rule ID")))
		return
	}

	if err := c.ruleService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Rule deleted"},
		Timestamp: time.Now(),
	})
}
