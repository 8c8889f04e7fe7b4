package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-beneficiary/sbms/internal/app/migrations"
	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

// testPool connects to the database named by TEST_DATABASE_URL and applies
// the schema. Tests that need a live database skip when the variable is
// unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory("../../../migrations"))
	return pool
}

func TestRemoveInterestPurgesOnlyTargetCategoryVerdicts(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	citizenRepo := NewCitizenRepository(pool)
	categoryRepo := NewCategoryRepository(pool)
	schemeRepo := NewSchemeRepository(pool)
	interestRepo := NewInterestRepository(pool)
	eligibilityRepo := NewEligibilityRepository(pool)

	suffix := time.Now().UnixNano()
	citizen := &models.Citizen{
		FullName:  "Meera Pillai",
		DOB:       time.Date(1998, time.August, 2, 0, 0, 0, 0, time.UTC),
		Gender:    "Female",
		AadhaarNo: fmt.Sprintf("%012d", suffix%1e12),
		Address:   "Alappuzha, Kerala",
	}
	require.NoError(t, citizenRepo.Create(ctx, citizen))
	t.Cleanup(func() { _ = citizenRepo.Delete(context.Background(), citizen.ID) })

	studentCat := &models.Category{Name: fmt.Sprintf("Student-%d", suffix)}
	farmerCat := &models.Category{Name: fmt.Sprintf("Farmer-%d", suffix)}
	require.NoError(t, categoryRepo.Create(ctx, studentCat))
	require.NoError(t, categoryRepo.Create(ctx, farmerCat))

	studentScheme := &models.Scheme{Name: "Scholarship", TargetCategory: studentCat.ID, IsActive: true}
	farmerScheme := &models.Scheme{Name: "Crop Subsidy", TargetCategory: farmerCat.ID, IsActive: true}
	require.NoError(t, schemeRepo.Create(ctx, studentScheme))
	require.NoError(t, schemeRepo.Create(ctx, farmerScheme))
	t.Cleanup(func() {
		_ = schemeRepo.Delete(context.Background(), studentScheme.ID)
		_ = schemeRepo.Delete(context.Background(), farmerScheme.ID)
	})

	for _, categoryID := range []int64{studentCat.ID, farmerCat.ID} {
		created, err := interestRepo.Add(ctx, citizen.ID, categoryID)
		require.NoError(t, err)
		require.True(t, created)
	}

	evaluatedAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, eligibilityRepo.UpsertBatch(ctx, []*models.EligibilityRecord{
		{CitizenID: citizen.ID, SchemeID: studentScheme.ID, Status: models.EligibilityStatusEligible, Reason: "Matched all eligibility criteria", EvaluatedAt: evaluatedAt},
		{CitizenID: citizen.ID, SchemeID: farmerScheme.ID, Status: models.EligibilityStatusEligible, Reason: "Matched all eligibility criteria", EvaluatedAt: evaluatedAt},
	}))

	require.NoError(t, interestRepo.Remove(ctx, citizen.ID, studentCat.ID))

	// The removed category's verdict is purged; the other category's
	// verdict and interest survive.
	categoryIDs, err := interestRepo.CategoryIDsByCitizen(ctx, citizen.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{farmerCat.ID}, categoryIDs)

	records, err := eligibilityRepo.ListByCitizen(ctx, citizen.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, farmerScheme.ID, records[0].SchemeID)

	err = interestRepo.Remove(ctx, citizen.ID, studentCat.ID)
	assert.ErrorIs(t, err, apperrors.ErrInterestNotFound)
}
