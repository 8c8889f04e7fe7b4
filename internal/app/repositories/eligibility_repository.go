package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/db"
)

// EligibilityRepository handles database operations for the
// citizen_eligibility ledger
type EligibilityRepository struct {
	db *pgxpool.Pool
}

// NewEligibilityRepository creates a new eligibility repository
func NewEligibilityRepository(db *pgxpool.Pool) *EligibilityRepository {
	return &EligibilityRepository{
		db: db,
	}
}

// UpsertBatch writes one evaluation round for a citizen atomically. Each
// record inserts or overwrites the (citizen, scheme) row, so readers never
// observe a half-updated ledger for the citizen.
func (r *EligibilityRepository) UpsertBatch(ctx context.Context, records []*models.EligibilityRecord) error {
	if len(records) == 0 {
		return nil
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO citizen_eligibility (citizen_id, scheme_id, status, reason, evaluated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT ON CONSTRAINT uq_citizen_scheme
			DO UPDATE SET status = EXCLUDED.status,
			              reason = EXCLUDED.reason,
			              evaluated_at = EXCLUDED.evaluated_at
		`

		for _, record := range records {
			_, err := tx.Exec(ctx, query,
				record.CitizenID, record.SchemeID, record.Status, record.Reason, record.EvaluatedAt)
			if err != nil {
				return fmt.Errorf("error upserting eligibility record: %w", err)
			}
		}

		return nil
	})
}

// ListByCitizen retrieves all ledger rows for a citizen with the scheme
// relation populated, most recently evaluated first
func (r *EligibilityRepository) ListByCitizen(ctx context.Context, citizenID int64) ([]*models.EligibilityRecord, error) {
	query := `
		SELECT ce.id, ce.citizen_id, ce.scheme_id, ce.status, ce.reason, ce.evaluated_at,
		       s.id, s.name, s.description, s.target_category, s.benefits,
		       s.official_link, s.registration_link, s.benefit_type, s.state, s.is_active
		FROM citizen_eligibility ce
		JOIN schemes s ON s.id = ce.scheme_id
		WHERE ce.citizen_id = $1
		ORDER BY ce.evaluated_at DESC, ce.id DESC
	`

	rows, err := r.db.Query(ctx, query, citizenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.EligibilityRecord
	for rows.Next() {
		var record models.EligibilityRecord
		var scheme models.Scheme
		err := rows.Scan(
			&record.ID, &record.CitizenID, &record.SchemeID, &record.Status, &record.Reason, &record.EvaluatedAt,
			&scheme.ID, &scheme.Name, &scheme.Description, &scheme.TargetCategory, &scheme.Benefits,
			&scheme.OfficialLink, &scheme.RegistrationLink, &scheme.BenefitType, &scheme.State, &scheme.IsActive,
		)
		if err != nil {
			return nil, err
		}
		record.Scheme = &scheme
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListEligible retrieves the Eligible ledger rows for a citizen joined with
// active schemes and their categories, optionally filtered, ordered by
// category name then scheme name
func (r *EligibilityRepository) ListEligible(ctx context.Context, citizenID int64, filter SchemeFilter) ([]*models.EligibleScheme, error) {
	query := `
		SELECT s.id, s.name, s.description, s.target_category, s.benefits,
		       s.official_link, s.registration_link, s.benefit_type, s.state, s.is_active,
		       c.name, ce.status, ce.reason, ce.evaluated_at
		FROM citizen_eligibility ce
		JOIN schemes s ON s.id = ce.scheme_id
		JOIN categories c ON c.id = s.target_category
		WHERE ce.citizen_id = $1
		  AND ce.status = 'Eligible'
		  AND s.is_active = TRUE
	`
	args := []interface{}{citizenID}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (s.name ILIKE $%d OR s.description ILIKE $%d)", len(args), len(args))
	}
	if filter.State != "" {
		args = append(args, filter.State)
		query += fmt.Sprintf(" AND s.state = $%d", len(args))
	}
	if filter.BenefitType != "" {
		args = append(args, filter.BenefitType)
		query += fmt.Sprintf(" AND s.benefit_type = $%d", len(args))
	}

	query += " ORDER BY c.name, s.name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*models.EligibleScheme
	for rows.Next() {
		var match models.EligibleScheme
		err := rows.Scan(
			&match.Scheme.ID, &match.Scheme.Name, &match.Scheme.Description, &match.Scheme.TargetCategory,
			&match.Scheme.Benefits, &match.Scheme.OfficialLink, &match.Scheme.RegistrationLink,
			&match.Scheme.BenefitType, &match.Scheme.State, &match.Scheme.IsActive,
			&match.CategoryName, &match.Status, &match.Reason, &match.EvaluatedAt,
		)
		if err != nil {
			return nil, err
		}
		matches = append(matches, &match)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}

// DeleteByCitizen removes all ledger rows for a citizen
func (r *EligibilityRepository) DeleteByCitizen(ctx context.Context, citizenID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM citizen_eligibility WHERE citizen_id = $1`, citizenID)
	if err != nil {
		return fmt.Errorf("error deleting eligibility records: %w", err)
	}
	return nil
}
