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

// AnnouncementController handles public announcements
type AnnouncementController struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// GetActiveAnnouncements retrieves currently visible announcements
// @Summary List active announcements
// @Tags announcements
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement} "Announcements retrieved"
// @Router /announcements [get]
func (c *AnnouncementController) GetActiveAnnouncements(ctx *gin.Context) {
	announcements, err := c.announcementService.GetActive(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      announcements,
		Timestamp: time.Now(),
	})
}

// CreateAnnouncement publishes a new announcement
// @Summary Create announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body dto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} dto.APIResponse{data=models.Announcement} "Announcement created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	announcement := &models.Announcement{
		Message: req.Message,
	}
	if req.IsActive != nil {
		announcement.IsActive = *req.IsActive
	}

	if err := c.announcementService.Create(ctx, announcement); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      announcement,
		Timestamp: time.Now(),
	})
}

// SetAnnouncementActive toggles an announcement's visibility
// @Summary Toggle announcement visibility
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param request body dto.SetAnnouncementActiveRequest true "Visibility"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Announcement updated"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id}/active [put]
func (c *AnnouncementController) SetAnnouncementActive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement ID")))
		return
	}

	var req dto.SetAnnouncementActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	if err := c.announcementService.SetActive(ctx, id, *req.IsActive); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Announcement updated"},
		Timestamp: time.Now(),
	})
}
