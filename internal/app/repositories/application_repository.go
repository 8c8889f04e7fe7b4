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

// ApplicationRepository handles database operations for scheme applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create inserts a new application in Pending state
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (citizen_id, scheme_id, status, remarks)
		VALUES ($1, $2, $3, $4)
		RETURNING id, applied_on
	`

	err := r.db.QueryRow(ctx, query,
		application.CitizenID, application.SchemeID, application.Status, application.Remarks,
	).Scan(&application.ID, &application.AppliedOn)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `SELECT id, citizen_id, scheme_id, status, remarks, applied_on FROM applications WHERE id = $1`

	var application models.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&application.ID, &application.CitizenID, &application.SchemeID,
		&application.Status, &application.Remarks, &application.AppliedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &application, nil
}

// HasOpen reports whether the citizen already has a pending or approved
// application for the scheme
func (r *ApplicationRepository) HasOpen(ctx context.Context, citizenID, schemeID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM applications
			WHERE citizen_id = $1 AND scheme_id = $2 AND status IN ('Pending', 'Approved')
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, citizenID, schemeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking open applications: %w", err)
	}

	return exists, nil
}

// ListByCitizen retrieves a citizen's applications with the scheme relation
// populated, most recent first
func (r *ApplicationRepository) ListByCitizen(ctx context.Context, citizenID int64) ([]*models.Application, error) {
	query := `
		SELECT a.id, a.citizen_id, a.scheme_id, a.status, a.remarks, a.applied_on,
		       s.id, s.name, s.description, s.target_category, s.benefits,
		       s.official_link, s.registration_link, s.benefit_type, s.state, s.is_active
		FROM applications a
		JOIN schemes s ON s.id = a.scheme_id
		WHERE a.citizen_id = $1
		ORDER BY a.applied_on DESC, a.id DESC
	`

	rows, err := r.db.Query(ctx, query, citizenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var application models.Application
		var scheme models.Scheme
		err := rows.Scan(
			&application.ID, &application.CitizenID, &application.SchemeID,
			&application.Status, &application.Remarks, &application.AppliedOn,
			&scheme.ID, &scheme.Name, &scheme.Description, &scheme.TargetCategory, &scheme.Benefits,
			&scheme.OfficialLink, &scheme.RegistrationLink, &scheme.BenefitType, &scheme.State, &scheme.IsActive,
		)
		if err != nil {
			return nil, err
		}
		application.Scheme = &scheme
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// UpdateStatus sets an application's status and remarks
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus, remarks string) error {
	query := `UPDATE applications SET status = $1, remarks = $2 WHERE id = $3`

	cmdTag, err := r.db.Exec(ctx, query, status, remarks, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}
