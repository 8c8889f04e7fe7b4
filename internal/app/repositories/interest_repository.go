package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/db"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
	"github.com/smart-beneficiary/sbms/internal/pkg/dberrors"
)

// InterestRepository handles database operations for citizen category
// interests
type InterestRepository struct {
	db *pgxpool.Pool
}

// NewInterestRepository creates a new interest repository
func NewInterestRepository(db *pgxpool.Pool) *InterestRepository {
	return &InterestRepository{
		db: db,
	}
}

// Add records a citizen's interest in a category. Adding an interest that
// already exists is a no-op; the bool reports whether a row was created.
func (r *InterestRepository) Add(ctx context.Context, citizenID, categoryID int64) (bool, error) {
	query := `
		INSERT INTO citizen_categories (citizen_id, category_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, citizenID, categoryID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_citizen_category") {
			return false, nil
		}
		return false, fmt.Errorf("error adding category interest: %w", err)
	}

	return true, nil
}

// Remove deletes a citizen's interest in a category together with the
// ledger rows for schemes targeting that category. Both deletes run in one
// transaction so the ledger never outlives the interest it derives from.
func (r *InterestRepository) Remove(ctx context.Context, citizenID, categoryID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx,
			`DELETE FROM citizen_categories WHERE citizen_id = $1 AND category_id = $2`,
			citizenID, categoryID)
		if err != nil {
			return fmt.Errorf("error removing category interest: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrInterestNotFound
		}

		purge := `
			DELETE FROM citizen_eligibility
			WHERE citizen_id = $1
			  AND scheme_id IN (SELECT id FROM schemes WHERE target_category = $2)
		`
		if _, err := tx.Exec(ctx, purge, citizenID, categoryID); err != nil {
			return fmt.Errorf("error purging eligibility records: %w", err)
		}

		return nil
	})
}

// ListByCitizen retrieves a citizen's category interests with the category
// relation populated, most recent first
func (r *InterestRepository) ListByCitizen(ctx context.Context, citizenID int64) ([]*models.CitizenCategory, error) {
	query := `
		SELECT cc.id, cc.citizen_id, cc.category_id, cc.selected_on,
		       c.id, c.name, c.description
		FROM citizen_categories cc
		JOIN categories c ON c.id = cc.category_id
		WHERE cc.citizen_id = $1
		ORDER BY cc.selected_on DESC, cc.id DESC
	`

	rows, err := r.db.Query(ctx, query, citizenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interests []*models.CitizenCategory
	for rows.Next() {
		var interest models.CitizenCategory
		var category models.Category
		err := rows.Scan(
			&interest.ID, &interest.CitizenID, &interest.CategoryID, &interest.SelectedOn,
			&category.ID, &category.Name, &category.Description,
		)
		if err != nil {
			return nil, err
		}
		interest.Category = &category
		interests = append(interests, &interest)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return interests, nil
}

// CategoryIDsByCitizen retrieves the IDs of all categories a citizen is
// interested in
func (r *InterestRepository) CategoryIDsByCitizen(ctx context.Context, citizenID int64) ([]int64, error) {
	query := `SELECT category_id FROM citizen_categories WHERE citizen_id = $1 ORDER BY category_id`

	rows, err := r.db.Query(ctx, query, citizenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// CitizenIDsByCategory retrieves the IDs of all citizens interested in a
// category. Used to fan out re-evaluation after a rule change.
func (r *InterestRepository) CitizenIDsByCategory(ctx context.Context, categoryID int64) ([]int64, error) {
	query := `SELECT citizen_id FROM citizen_categories WHERE category_id = $1 ORDER BY citizen_id`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
