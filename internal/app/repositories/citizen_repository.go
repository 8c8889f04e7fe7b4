package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/db"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
	"github.com/smart-beneficiary/sbms/internal/pkg/dberrors"
)

// CitizenRepository handles database operations for citizen profiles
type CitizenRepository struct {
	db *pgxpool.Pool
}

// NewCitizenRepository creates a new citizen repository
func NewCitizenRepository(db *pgxpool.Pool) *CitizenRepository {
	return &CitizenRepository{
		db: db,
	}
}

const citizenColumns = `id, full_name, dob, gender, email, phone, aadhaar_no, address, income, occupation, education, created_at, updated_at`

func scanCitizen(row pgx.Row) (*models.Citizen, error) {
	var c models.Citizen
	err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.DOB,
		&c.Gender,
		&c.Email,
		&c.Phone,
		&c.AadhaarNo,
		&c.Address,
		&c.Income,
		&c.Occupation,
		&c.Education,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new citizen profile
func (r *CitizenRepository) Create(ctx context.Context, citizen *models.Citizen) error {
	query := `
		INSERT INTO citizens (full_name, dob, gender, email, phone, aadhaar_no, address, income, occupation, education)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		citizen.FullName, citizen.DOB, citizen.Gender, citizen.Email, citizen.Phone,
		citizen.AadhaarNo, citizen.Address, citizen.Income, citizen.Occupation, citizen.Education,
	).Scan(&citizen.ID, &citizen.CreatedAt, &citizen.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_citizen_aadhaar") {
			return apperrors.ErrAadhaarAlreadyExists
		}
		return fmt.Errorf("error creating citizen: %w", err)
	}

	return nil
}

// GetByID retrieves a citizen by ID
func (r *CitizenRepository) GetByID(ctx context.Context, id int64) (*models.Citizen, error) {
	query := `SELECT ` + citizenColumns + ` FROM citizens WHERE id = $1`

	citizen, err := scanCitizen(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCitizenNotFound
		}
		return nil, fmt.Errorf("error retrieving citizen: %w", err)
	}

	return citizen, nil
}

// Update updates a citizen's profile fields
func (r *CitizenRepository) Update(ctx context.Context, citizen *models.Citizen) error {
	query := `
		UPDATE citizens
		SET full_name = $1, dob = $2, gender = $3, email = $4, phone = $5,
		    address = $6, income = $7, occupation = $8, education = $9,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		citizen.FullName, citizen.DOB, citizen.Gender, citizen.Email, citizen.Phone,
		citizen.Address, citizen.Income, citizen.Occupation, citizen.Education, citizen.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating citizen: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCitizenNotFound
	}

	return nil
}

// Delete removes a citizen and all dependent records in one transaction.
// The cascade is explicit application code rather than schema triggers so
// it stays visible and testable: ledger rows, category interests,
// applications and grievances go first, then the profile itself.
func (r *CitizenRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM citizen_eligibility WHERE citizen_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting eligibility records: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM citizen_categories WHERE citizen_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting category interests: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE citizen_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting applications: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM grievances WHERE citizen_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting grievances: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM citizens WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting citizen: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCitizenNotFound
		}
		return nil
	})
}
