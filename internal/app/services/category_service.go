package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

// CategoryService handles beneficiary categories and citizen interests
type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
	interestRepo *repositories.InterestRepository
	citizenRepo  *repositories.CitizenRepository
	evaluator    *EligibilityService
}

// NewCategoryService creates a new category service instance
func NewCategoryService(
	categoryRepo *repositories.CategoryRepository,
	interestRepo *repositories.InterestRepository,
	citizenRepo *repositories.CitizenRepository,
	evaluator *EligibilityService,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		interestRepo: interestRepo,
		citizenRepo:  citizenRepo,
		evaluator:    evaluator,
	}
}

// Create creates a new beneficiary category
func (s *CategoryService) Create(ctx context.Context, category *models.Category) error {
	if category == nil || strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: category name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.categoryRepo.Create(ctx, category)
}

// GetAll retrieves all categories
func (s *CategoryService) GetAll(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// AddInterests registers a citizen's interest in the given categories and
// recomputes their eligibility ledger once. Re-adding an existing interest
// is a no-op success.
func (s *CategoryService) AddInterests(ctx context.Context, citizenID int64, categoryIDs []int64) error {
	if _, err := s.citizenRepo.GetByID(ctx, citizenID); err != nil {
		return err
	}

	for _, categoryID := range categoryIDs {
		if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
			return err
		}
		if _, err := s.interestRepo.Add(ctx, citizenID, categoryID); err != nil {
			return err
		}
	}

	return s.evaluator.EvaluateCitizen(ctx, citizenID)
}

// RemoveInterest removes a citizen's interest in a category. The ledger
// rows for schemes targeting that category are purged in the same
// transaction; verdicts for other categories are untouched.
func (s *CategoryService) RemoveInterest(ctx context.Context, citizenID, categoryID int64) error {
	if _, err := s.citizenRepo.GetByID(ctx, citizenID); err != nil {
		return err
	}
	return s.interestRepo.Remove(ctx, citizenID, categoryID)
}

// ListInterests retrieves a citizen's category interests
func (s *CategoryService) ListInterests(ctx context.Context, citizenID int64) ([]*models.CitizenCategory, error) {
	if _, err := s.citizenRepo.GetByID(ctx, citizenID); err != nil {
		return nil, err
	}
	return s.interestRepo.ListByCitizen(ctx, citizenID)
}
