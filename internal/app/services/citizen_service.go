package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
	"github.com/smart-beneficiary/sbms/internal/pkg/validation"
)

// CitizenService handles citizen profile operations
type CitizenService struct {
	citizenRepo *repositories.CitizenRepository
	evaluator   *EligibilityService
}

// NewCitizenService creates a new citizen service instance
func NewCitizenService(citizenRepo *repositories.CitizenRepository, evaluator *EligibilityService) *CitizenService {
	return &CitizenService{
		citizenRepo: citizenRepo,
		evaluator:   evaluator,
	}
}

func validateCitizen(citizen *models.Citizen) error {
	if citizen == nil {
		return fmt.Errorf("%w: citizen is nil", apperrors.ErrValidationFailed)
	}
	nameOK := validation.NewStringValidation(strings.TrimSpace(citizen.FullName)).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !nameOK {
		return fmt.Errorf("%w: full name must be %d-%d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}
	if citizen.DOB.IsZero() {
		return fmt.Errorf("%w: date of birth is required", apperrors.ErrValidationFailed)
	}
	phoneOK := validation.NewStringValidation(citizen.Phone).
		WithRequired(false).
		WithPattern(validation.CompiledPatterns.Phone).
		Validate()
	if !phoneOK {
		return fmt.Errorf("%w: phone must be a valid mobile number", apperrors.ErrValidationFailed)
	}
	if citizen.Income != nil && *citizen.Income < 0 {
		return fmt.Errorf("%w: income cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// Register creates a new citizen profile
func (s *CitizenService) Register(ctx context.Context, citizen *models.Citizen) error {
	if err := validateCitizen(citizen); err != nil {
		return err
	}
	aadhaarOK := validation.NewStringValidation(citizen.AadhaarNo).
		WithPattern(validation.CompiledPatterns.Aadhaar).
		Validate()
	if !aadhaarOK {
		return fmt.Errorf("%w: aadhaar number must be exactly 12 digits", apperrors.ErrValidationFailed)
	}
	return s.citizenRepo.Create(ctx, citizen)
}

// GetByID retrieves a citizen profile
func (s *CitizenService) GetByID(ctx context.Context, id int64) (*models.Citizen, error) {
	return s.citizenRepo.GetByID(ctx, id)
}

// Update updates a citizen's profile and recomputes their eligibility
// ledger against the new attributes
func (s *CitizenService) Update(ctx context.Context, citizen *models.Citizen) error {
	if err := validateCitizen(citizen); err != nil {
		return err
	}

	if err := s.citizenRepo.Update(ctx, citizen); err != nil {
		return err
	}

	return s.evaluator.EvaluateCitizen(ctx, citizen.ID)
}

// Delete removes a citizen profile together with their interests, ledger
// rows, applications and grievances
func (s *CitizenService) Delete(ctx context.Context, id int64) error {
	return s.citizenRepo.Delete(ctx, id)
}
