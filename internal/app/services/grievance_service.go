package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

// GrievanceService handles grievance lifecycle operations
type GrievanceService struct {
	grievanceRepo *repositories.GrievanceRepository
	citizenRepo   *repositories.CitizenRepository
	schemeRepo    *repositories.SchemeRepository
}

// NewGrievanceService creates a new grievance service instance
func NewGrievanceService(
	grievanceRepo *repositories.GrievanceRepository,
	citizenRepo *repositories.CitizenRepository,
	schemeRepo *repositories.SchemeRepository,
) *GrievanceService {
	return &GrievanceService{
		grievanceRepo: grievanceRepo,
		citizenRepo:   citizenRepo,
		schemeRepo:    schemeRepo,
	}
}

// Raise files a grievance for a citizen, optionally against a scheme
func (s *GrievanceService) Raise(ctx context.Context, citizenID int64, schemeID *int64, complaint string) (*models.Grievance, error) {
	if strings.TrimSpace(complaint) == "" {
		return nil, fmt.Errorf("%w: complaint cannot be empty", apperrors.ErrValidationFailed)
	}
	if _, err := s.citizenRepo.GetByID(ctx, citizenID); err != nil {
		return nil, err
	}
	if schemeID != nil {
		if _, err := s.schemeRepo.GetByID(ctx, *schemeID); err != nil {
			return nil, err
		}
	}

	grievance := &models.Grievance{
		CitizenID: citizenID,
		SchemeID:  schemeID,
		Complaint: complaint,
		Status:    models.GrievanceStatusOpen,
	}
	if err := s.grievanceRepo.Create(ctx, grievance); err != nil {
		return nil, err
	}

	return grievance, nil
}

// ListByCitizen retrieves a citizen's grievances
func (s *GrievanceService) ListByCitizen(ctx context.Context, citizenID int64) ([]*models.Grievance, error) {
	if _, err := s.citizenRepo.GetByID(ctx, citizenID); err != nil {
		return nil, err
	}
	return s.grievanceRepo.ListByCitizen(ctx, citizenID)
}

// Resolve closes an open grievance with an admin remark
func (s *GrievanceService) Resolve(ctx context.Context, id int64, adminRemark string) error {
	grievance, err := s.grievanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if grievance.Status == models.GrievanceStatusResolved {
		return apperrors.ErrGrievanceResolved
	}

	return s.grievanceRepo.Resolve(ctx, id, adminRemark)
}
