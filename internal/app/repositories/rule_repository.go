package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

// RuleRepository handles database operations for eligibility rules
type RuleRepository struct {
	db *pgxpool.Pool
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{
		db: db,
	}
}

const ruleColumns = `id, scheme_id, category_id, age_min, age_max, gender, location, min_income, max_income, education_required, pension_status, disability_cert, unemployment_status, business_turnover_limit`

func scanRule(row pgx.Row) (*models.Rule, error) {
	var rule models.Rule
	err := row.Scan(
		&rule.ID,
		&rule.SchemeID,
		&rule.CategoryID,
		&rule.AgeMin,
		&rule.AgeMax,
		&rule.Gender,
		&rule.Location,
		&rule.MinIncome,
		&rule.MaxIncome,
		&rule.EducationRequired,
		&rule.PensionStatus,
		&rule.DisabilityCert,
		&rule.UnemploymentStatus,
		&rule.BusinessTurnoverLimit,
	)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// Create inserts a new rule
func (r *RuleRepository) Create(ctx context.Context, rule *models.Rule) error {
	query := `
		INSERT INTO rules (scheme_id, category_id, age_min, age_max, gender, location, min_income, max_income, education_required, pension_status, disability_cert, unemployment_status, business_turnover_limit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		rule.SchemeID, rule.CategoryID, rule.AgeMin, rule.AgeMax, rule.Gender, rule.Location,
		rule.MinIncome, rule.MaxIncome, rule.EducationRequired, rule.PensionStatus,
		rule.DisabilityCert, rule.UnemploymentStatus, rule.BusinessTurnoverLimit,
	).Scan(&rule.ID)
	if err != nil {
		return fmt.Errorf("error creating rule: %w", err)
	}

	return nil
}

// GetByID retrieves a rule by ID
func (r *RuleRepository) GetByID(ctx context.Context, id int64) (*models.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM rules WHERE id = $1`

	rule, err := scanRule(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("error retrieving rule: %w", err)
	}

	return rule, nil
}

// GetByCategoryIDs retrieves all rules whose category is in the given set,
// ordered by ID so evaluation order is stable
func (r *RuleRepository) GetByCategoryIDs(ctx context.Context, categoryIDs []int64) ([]*models.Rule, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + ruleColumns + ` FROM rules WHERE category_id = ANY($1) ORDER BY id`

	rows, err := r.db.Query(ctx, query, categoryIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRules(rows)
}

// GetBySchemeID retrieves all rules for a scheme ordered by ID
func (r *RuleRepository) GetBySchemeID(ctx context.Context, schemeID int64) ([]*models.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM rules WHERE scheme_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, schemeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRules(rows)
}

func collectRules(rows pgx.Rows) ([]*models.Rule, error) {
	var rules []*models.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

// Update updates a rule's constraint fields
func (r *RuleRepository) Update(ctx context.Context, rule *models.Rule) error {
	query := `
		UPDATE rules
		SET age_min = $1, age_max = $2, gender = $3, location = $4,
		    min_income = $5, max_income = $6, education_required = $7,
		    pension_status = $8, disability_cert = $9, unemployment_status = $10,
		    business_turnover_limit = $11
		WHERE id = $12
	`

	cmdTag, err := r.db.Exec(ctx, query,
		rule.AgeMin, rule.AgeMax, rule.Gender, rule.Location,
		rule.MinIncome, rule.MaxIncome, rule.EducationRequired,
		rule.PensionStatus, rule.DisabilityCert, rule.UnemploymentStatus,
		rule.BusinessTurnoverLimit, rule.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating rule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRuleNotFound
	}

	return nil
}

// Delete removes a rule
func (r *RuleRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting rule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRuleNotFound
	}

	return nil
}
