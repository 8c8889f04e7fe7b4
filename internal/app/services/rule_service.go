package services

import (
	"context"
	"fmt"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

// RuleService handles eligibility rule operations. Every rule write fans
// out a re-evaluation of citizens interested in the rule's category.
type RuleService struct {
	ruleRepo     *repositories.RuleRepository
	schemeRepo   *repositories.SchemeRepository
	categoryRepo *repositories.CategoryRepository
	evaluator    *EligibilityService
}

// NewRuleService creates a new rule service instance
func NewRuleService(
	ruleRepo *repositories.RuleRepository,
	schemeRepo *repositories.SchemeRepository,
	categoryRepo *repositories.CategoryRepository,
	evaluator *EligibilityService,
) *RuleService {
	return &RuleService{
		ruleRepo:     ruleRepo,
		schemeRepo:   schemeRepo,
		categoryRepo: categoryRepo,
		evaluator:    evaluator,
	}
}

func validateRule(rule *models.Rule) error {
	if rule == nil {
		return fmt.Errorf("%w: rule is nil", apperrors.ErrValidationFailed)
	}
	if rule.AgeMin != nil && rule.AgeMax != nil && *rule.AgeMin > *rule.AgeMax {
		return fmt.Errorf("%w: minimum age exceeds maximum age", apperrors.ErrValidationFailed)
	}
	if rule.MinIncome != nil && rule.MaxIncome != nil && *rule.MinIncome > *rule.MaxIncome {
		return fmt.Errorf("%w: minimum income exceeds maximum income", apperrors.ErrValidationFailed)
	}
	return nil
}

// Create adds a rule to a scheme and re-evaluates affected citizens
func (s *RuleService) Create(ctx context.Context, rule *models.Rule) error {
	if err := validateRule(rule); err != nil {
		return err
	}
	if _, err := s.schemeRepo.GetByID(ctx, rule.SchemeID); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, rule.CategoryID); err != nil {
		return err
	}

	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return err
	}

	return s.evaluator.OnRuleChanged(ctx, rule.CategoryID)
}

// GetByID retrieves a rule
func (s *RuleService) GetByID(ctx context.Context, id int64) (*models.Rule, error) {
	return s.ruleRepo.GetByID(ctx, id)
}

// GetBySchemeID retrieves all rules for a scheme
func (s *RuleService) GetBySchemeID(ctx context.Context, schemeID int64) ([]*models.Rule, error) {
	if _, err := s.schemeRepo.GetByID(ctx, schemeID); err != nil {
		return nil, err
	}
	return s.ruleRepo.GetBySchemeID(ctx, schemeID)
}

// Update changes a rule's constraints and re-evaluates affected citizens.
// The rule's scheme and category bindings are immutable.
func (s *RuleService) Update(ctx context.Context, rule *models.Rule) error {
	if err := validateRule(rule); err != nil {
		return err
	}

	existing, err := s.ruleRepo.GetByID(ctx, rule.ID)
	if err != nil {
		return err
	}
	rule.SchemeID = existing.SchemeID
	rule.CategoryID = existing.CategoryID

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return err
	}

	return s.evaluator.OnRuleChanged(ctx, rule.CategoryID)
}

// Delete removes a rule and re-evaluates affected citizens. Schemes left
// without rules keep their last stored verdicts until the next profile or
// interest change drops them from the recomputed batch.
func (s *RuleService) Delete(ctx context.Context, id int64) error {
	existing, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.evaluator.OnRuleChanged(ctx, existing.CategoryID)
}
