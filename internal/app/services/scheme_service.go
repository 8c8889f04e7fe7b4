package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

// SchemeService handles welfare scheme operations
type SchemeService struct {
	schemeRepo   *repositories.SchemeRepository
	categoryRepo *repositories.CategoryRepository
	evaluator    *EligibilityService
}

// NewSchemeService creates a new scheme service instance
func NewSchemeService(
	schemeRepo *repositories.SchemeRepository,
	categoryRepo *repositories.CategoryRepository,
	evaluator *EligibilityService,
) *SchemeService {
	return &SchemeService{
		schemeRepo:   schemeRepo,
		categoryRepo: categoryRepo,
		evaluator:    evaluator,
	}
}

func (s *SchemeService) validateScheme(ctx context.Context, scheme *models.Scheme) error {
	if scheme == nil || strings.TrimSpace(scheme.Name) == "" {
		return fmt.Errorf("%w: scheme name cannot be empty", apperrors.ErrValidationFailed)
	}
	if _, err := s.categoryRepo.GetByID(ctx, scheme.TargetCategory); err != nil {
		return err
	}
	return nil
}

// Create creates a new scheme. A scheme carries no verdicts until it has
// rules, so no re-evaluation is triggered here.
func (s *SchemeService) Create(ctx context.Context, scheme *models.Scheme) error {
	if err := s.validateScheme(ctx, scheme); err != nil {
		return err
	}
	return s.schemeRepo.Create(ctx, scheme)
}

// GetByID retrieves a scheme with its category
func (s *SchemeService) GetByID(ctx context.Context, id int64) (*models.Scheme, error) {
	return s.schemeRepo.GetByID(ctx, id)
}

// GetAll retrieves schemes matching the filter with pagination
func (s *SchemeService) GetAll(ctx context.Context, filter repositories.SchemeFilter, offset uint64, limit int) ([]*models.Scheme, int64, error) {
	return s.schemeRepo.GetAll(ctx, filter, offset, limit)
}

// Update updates a scheme and re-evaluates citizens interested in its
// target category, since retargeting moves the scheme's verdicts between
// interest populations
func (s *SchemeService) Update(ctx context.Context, scheme *models.Scheme) error {
	if err := s.validateScheme(ctx, scheme); err != nil {
		return err
	}

	existing, err := s.schemeRepo.GetByID(ctx, scheme.ID)
	if err != nil {
		return err
	}

	if err := s.schemeRepo.Update(ctx, scheme); err != nil {
		return err
	}

	if existing.TargetCategory != scheme.TargetCategory {
		if err := s.evaluator.OnRuleChanged(ctx, existing.TargetCategory); err != nil {
			return err
		}
		return s.evaluator.OnRuleChanged(ctx, scheme.TargetCategory)
	}

	return nil
}

// Delete removes a scheme; its rules and ledger rows go with it
func (s *SchemeService) Delete(ctx context.Context, id int64) error {
	return s.schemeRepo.Delete(ctx, id)
}
