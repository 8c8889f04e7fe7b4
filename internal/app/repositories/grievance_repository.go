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

// GrievanceRepository handles database operations for citizen grievances
type GrievanceRepository struct {
	db *pgxpool.Pool
}

// NewGrievanceRepository creates a new grievance repository
func NewGrievanceRepository(db *pgxpool.Pool) *GrievanceRepository {
	return &GrievanceRepository{
		db: db,
	}
}

// Create inserts a new grievance in Open state
func (r *GrievanceRepository) Create(ctx context.Context, grievance *models.Grievance) error {
	query := `
		INSERT INTO grievances (citizen_id, scheme_id, complaint, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, raised_on
	`

	err := r.db.QueryRow(ctx, query,
		grievance.CitizenID, grievance.SchemeID, grievance.Complaint, grievance.Status,
	).Scan(&grievance.ID, &grievance.RaisedOn)
	if err != nil {
		return fmt.Errorf("error creating grievance: %w", err)
	}

	return nil
}

// GetByID retrieves a grievance by ID
func (r *GrievanceRepository) GetByID(ctx context.Context, id int64) (*models.Grievance, error) {
	query := `
		SELECT id, citizen_id, scheme_id, complaint, status, admin_remark, raised_on, resolved_on
		FROM grievances WHERE id = $1
	`

	var grievance models.Grievance
	err := r.db.QueryRow(ctx, query, id).Scan(
		&grievance.ID, &grievance.CitizenID, &grievance.SchemeID, &grievance.Complaint,
		&grievance.Status, &grievance.AdminRemark, &grievance.RaisedOn, &grievance.ResolvedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGrievanceNotFound
		}
		return nil, fmt.Errorf("error retrieving grievance: %w", err)
	}

	return &grievance, nil
}

// ListByCitizen retrieves a citizen's grievances, most recent first
func (r *GrievanceRepository) ListByCitizen(ctx context.Context, citizenID int64) ([]*models.Grievance, error) {
	query := `
		SELECT id, citizen_id, scheme_id, complaint, status, admin_remark, raised_on, resolved_on
		FROM grievances
		WHERE citizen_id = $1
		ORDER BY raised_on DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, citizenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grievances []*models.Grievance
	for rows.Next() {
		var grievance models.Grievance
		err := rows.Scan(
			&grievance.ID, &grievance.CitizenID, &grievance.SchemeID, &grievance.Complaint,
			&grievance.Status, &grievance.AdminRemark, &grievance.RaisedOn, &grievance.ResolvedOn,
		)
		if err != nil {
			return nil, err
		}
		grievances = append(grievances, &grievance)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grievances, nil
}

// Resolve marks a grievance resolved with an admin remark and timestamp
func (r *GrievanceRepository) Resolve(ctx context.Context, id int64, adminRemark string) error {
	query := `
		UPDATE grievances
		SET status = $1, admin_remark = $2, resolved_on = CURRENT_TIMESTAMP
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, models.GrievanceStatusResolved, adminRemark, id)
	if err != nil {
		return fmt.Errorf("error resolving grievance: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGrievanceNotFound
	}

	return nil
}
