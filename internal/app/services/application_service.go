package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

// ApplicationService handles scheme application lifecycle operations
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	citizenRepo     *repositories.CitizenRepository
	schemeRepo      *repositories.SchemeRepository
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	citizenRepo *repositories.CitizenRepository,
	schemeRepo *repositories.SchemeRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		citizenRepo:     citizenRepo,
		schemeRepo:      schemeRepo,
	}
}

// Apply submits a citizen's application to a scheme. A citizen can have at
// most one open (pending or approved) application per scheme.
func (s *ApplicationService) Apply(ctx context.Context, citizenID, schemeID int64, remarks string) (*models.Application, error) {
	if _, err := s.citizenRepo.GetByID(ctx, citizenID); err != nil {
		return nil, err
	}
	if _, err := s.schemeRepo.GetByID(ctx, schemeID); err != nil {
		return nil, err
	}

	open, err := s.applicationRepo.HasOpen(ctx, citizenID, schemeID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, apperrors.ErrApplicationDuplicate
	}

	application := &models.Application{
		CitizenID: citizenID,
		SchemeID:  schemeID,
		Status:    models.ApplicationStatusPending,
		Remarks:   remarks,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

// ListByCitizen retrieves a citizen's applications
func (s *ApplicationService) ListByCitizen(ctx context.Context, citizenID int64) ([]*models.Application, error) {
	if _, err := s.citizenRepo.GetByID(ctx, citizenID); err != nil {
		return nil, err
	}
	return s.applicationRepo.ListByCitizen(ctx, citizenID)
}

// Decide records an admin decision on a pending application
func (s *ApplicationService) Decide(ctx context.Context, id int64, status models.ApplicationStatus, remarks string) error {
	if status != models.ApplicationStatusApproved && status != models.ApplicationStatusRejected {
		return fmt.Errorf("%w: decision must be Approved or Rejected", apperrors.ErrValidationFailed)
	}

	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if application.Status != models.ApplicationStatusPending {
		return apperrors.ErrApplicationNotOpen
	}

	if strings.TrimSpace(remarks) == "" {
		remarks = application.Remarks
	}

	return s.applicationRepo.UpdateStatus(ctx, id, status, remarks)
}

// Withdraw lets a citizen withdraw their own pending application
func (s *ApplicationService) Withdraw(ctx context.Context, citizenID, applicationID int64) error {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if application.CitizenID != citizenID {
		return apperrors.ErrApplicationNotFound
	}
	if application.Status != models.ApplicationStatusPending {
		return apperrors.ErrApplicationNotOpen
	}

	return s.applicationRepo.UpdateStatus(ctx, applicationID, models.ApplicationStatusWithdrawn, application.Remarks)
}
