package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

// AnnouncementService handles public announcement operations
type AnnouncementService struct {
	announcementRepo *repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
	}
}

// Create publishes a new announcement
func (s *AnnouncementService) Create(ctx context.Context, announcement *models.Announcement) error {
	if announcement == nil || strings.TrimSpace(announcement.Message) == "" {
		return fmt.Errorf("%w: announcement message cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.announcementRepo.Create(ctx, announcement)
}

// GetActive retrieves currently visible announcements
func (s *AnnouncementService) GetActive(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.GetActive(ctx)
}

// SetActive toggles an announcement's visibility
func (s *AnnouncementService) SetActive(ctx context.Context, id int64, active bool) error {
	return s.announcementRepo.SetActive(ctx, id, active)
}
