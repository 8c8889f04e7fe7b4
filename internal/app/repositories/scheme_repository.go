package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/db"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

// SchemeRepository handles database operations for welfare schemes
type SchemeRepository struct {
	db *pgxpool.Pool
}

// NewSchemeRepository creates a new scheme repository
func NewSchemeRepository(db *pgxpool.Pool) *SchemeRepository {
	return &SchemeRepository{
		db: db,
	}
}

// SchemeFilter holds optional filters for listing schemes
type SchemeFilter struct {
	Search      string
	State       string
	BenefitType string
	CategoryID  *int64
	ActiveOnly  bool
}

const schemeColumns = `id, name, description, target_category, benefits, official_link, registration_link, benefit_type, state, is_active`

func scanScheme(row pgx.Row) (*models.Scheme, error) {
	var s models.Scheme
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.TargetCategory,
		&s.Benefits,
		&s.OfficialLink,
		&s.RegistrationLink,
		&s.BenefitType,
		&s.State,
		&s.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func auditScheme(ctx context.Context, tx pgx.Tx, schemeID int64, action models.SchemeAuditAction) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO scheme_audit_log (scheme_id, action) VALUES ($1, $2)`,
		schemeID, action)
	if err != nil {
		return fmt.Errorf("error writing scheme audit entry: %w", err)
	}
	return nil
}

// Create inserts a new scheme and its audit entry in one transaction
func (r *SchemeRepository) Create(ctx context.Context, scheme *models.Scheme) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO schemes (name, description, target_category, benefits, official_link, registration_link, benefit_type, state, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query,
			scheme.Name, scheme.Description, scheme.TargetCategory, scheme.Benefits,
			scheme.OfficialLink, scheme.RegistrationLink, scheme.BenefitType, scheme.State, scheme.IsActive,
		).Scan(&scheme.ID)
		if err != nil {
			return fmt.Errorf("error creating scheme: %w", err)
		}

		return auditScheme(ctx, tx, scheme.ID, models.SchemeAuditInserted)
	})
}

// GetByID retrieves a scheme by ID with its category relation
func (r *SchemeRepository) GetByID(ctx context.Context, id int64) (*models.Scheme, error) {
	query := `
		SELECT s.id, s.name, s.description, s.target_category, s.benefits,
		       s.official_link, s.registration_link, s.benefit_type, s.state, s.is_active,
		       c.id, c.name, c.description
		FROM schemes s
		JOIN categories c ON c.id = s.target_category
		WHERE s.id = $1
	`

	var scheme models.Scheme
	var category models.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&scheme.ID, &scheme.Name, &scheme.Description, &scheme.TargetCategory, &scheme.Benefits,
		&scheme.OfficialLink, &scheme.RegistrationLink, &scheme.BenefitType, &scheme.State, &scheme.IsActive,
		&category.ID, &category.Name, &category.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchemeNotFound
		}
		return nil, fmt.Errorf("error retrieving scheme: %w", err)
	}

	scheme.Category = &category
	return &scheme, nil
}

// GetAll retrieves schemes matching the filter with pagination, ordered by
// name. Returns the page of schemes plus the total match count.
func (r *SchemeRepository) GetAll(ctx context.Context, filter SchemeFilter, offset uint64, limit int) ([]*models.Scheme, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.State != "" {
		args = append(args, filter.State)
		conditions = append(conditions, fmt.Sprintf("state = $%d", len(args)))
	}
	if filter.BenefitType != "" {
		args = append(args, filter.BenefitType)
		conditions = append(conditions, fmt.Sprintf("benefit_type = $%d", len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("target_category = $%d", len(args)))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM schemes` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting schemes: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM schemes%s ORDER BY name LIMIT $%d OFFSET $%d`,
		schemeColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var schemes []*models.Scheme
	for rows.Next() {
		scheme, err := scanScheme(rows)
		if err != nil {
			return nil, 0, err
		}
		schemes = append(schemes, scheme)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return schemes, total, nil
}

// Update updates a scheme and records the change in the audit log
func (r *SchemeRepository) Update(ctx context.Context, scheme *models.Scheme) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE schemes
			SET name = $1, description = $2, target_category = $3, benefits = $4,
			    official_link = $5, registration_link = $6, benefit_type = $7,
			    state = $8, is_active = $9
			WHERE id = $10
		`

		cmdTag, err := tx.Exec(ctx, query,
			scheme.Name, scheme.Description, scheme.TargetCategory, scheme.Benefits,
			scheme.OfficialLink, scheme.RegistrationLink, scheme.BenefitType, scheme.State,
			scheme.IsActive, scheme.ID,
		)
		if err != nil {
			return fmt.Errorf("error updating scheme: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrSchemeNotFound
		}

		return auditScheme(ctx, tx, scheme.ID, models.SchemeAuditUpdated)
	})
}

// Delete removes a scheme, its ledger rows and its rules, and records the
// deletion in the audit log. Rules go via ON DELETE CASCADE.
func (r *SchemeRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM citizen_eligibility WHERE scheme_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting eligibility records: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM schemes WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting scheme: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrSchemeNotFound
		}

		return auditScheme(ctx, tx, id, models.SchemeAuditDeleted)
	})
}
