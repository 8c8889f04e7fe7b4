package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

// In-memory fakes for the evaluator's store interfaces.

type fakeCitizenStore struct {
	mu       sync.Mutex
	citizens map[int64]*models.Citizen
}

func (f *fakeCitizenStore) GetByID(_ context.Context, id int64) (*models.Citizen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.citizens[id]
	if !ok {
		return nil, apperrors.ErrCitizenNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCitizenStore) set(c *models.Citizen) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.citizens[c.ID] = c
}

type fakeInterestStore struct {
	mu sync.Mutex
	// citizen -> category IDs, in insertion order
	byCitizen map[int64][]int64
}

func (f *fakeInterestStore) CategoryIDsByCitizen(_ context.Context, citizenID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.byCitizen[citizenID]...), nil
}

func (f *fakeInterestStore) CitizenIDsByCategory(_ context.Context, categoryID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []int64
	for citizenID, categories := range f.byCitizen {
		for _, id := range categories {
			if id == categoryID {
				ids = append(ids, citizenID)
				break
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// fakeSchemeStore only backs the ledger fake's join; the evaluator itself
// works from rules alone.
type fakeSchemeStore struct {
	schemes []*models.Scheme
}

type fakeRuleStore struct {
	mu    sync.Mutex
	rules []*models.Rule
}

func (f *fakeRuleStore) GetByCategoryIDs(_ context.Context, categoryIDs []int64) ([]*models.Rule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := make(map[int64]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}
	var matched []*models.Rule
	for _, r := range f.rules {
		if wanted[r.CategoryID] {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeRuleStore) GetBySchemeID(_ context.Context, schemeID int64) ([]*models.Rule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*models.Rule
	for _, r := range f.rules {
		if r.SchemeID == schemeID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeRuleStore) replace(id int64, rule *models.Rule) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rules {
		if r.ID == id {
			f.rules[i] = rule
			return
		}
	}
}

type ledgerKey struct {
	citizenID int64
	schemeID  int64
}

type fakeLedgerStore struct {
	mu      sync.Mutex
	rows    map[ledgerKey]*models.EligibilityRecord
	schemes *fakeSchemeStore
}

func (f *fakeLedgerStore) UpsertBatch(_ context.Context, records []*models.EligibilityRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range records {
		copied := *r
		f.rows[ledgerKey{r.CitizenID, r.SchemeID}] = &copied
	}
	return nil
}

func (f *fakeLedgerStore) ListByCitizen(_ context.Context, citizenID int64) ([]*models.EligibilityRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var records []*models.EligibilityRecord
	for key, r := range f.rows {
		if key.citizenID == citizenID {
			records = append(records, r)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].SchemeID < records[j].SchemeID })
	return records, nil
}

func (f *fakeLedgerStore) ListEligible(_ context.Context, citizenID int64, filter repositories.SchemeFilter) ([]*models.EligibleScheme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []*models.EligibleScheme
	for key, row := range f.rows {
		if key.citizenID != citizenID || row.Status != models.EligibilityStatusEligible {
			continue
		}
		for _, s := range f.schemes.schemes {
			if s.ID != key.schemeID || !s.IsActive {
				continue
			}
			if filter.Search != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Search)) {
				continue
			}
			matches = append(matches, &models.EligibleScheme{
				Scheme:      *s,
				Status:      row.Status,
				Reason:      row.Reason,
				EvaluatedAt: row.EvaluatedAt,
			})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Scheme.ID < matches[j].Scheme.ID })
	return matches, nil
}

func (f *fakeLedgerStore) get(citizenID, schemeID int64) (*models.EligibilityRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[ledgerKey{citizenID, schemeID}]
	return r, ok
}

func (f *fakeLedgerStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type engineHarness struct {
	citizens  *fakeCitizenStore
	interests *fakeInterestStore
	schemes   *fakeSchemeStore
	rules     *fakeRuleStore
	ledger    *fakeLedgerStore
	svc       *EligibilityService
}

func newEngineHarness(syncThreshold int) *engineHarness {
	h := &engineHarness{
		citizens:  &fakeCitizenStore{citizens: make(map[int64]*models.Citizen)},
		interests: &fakeInterestStore{byCitizen: make(map[int64][]int64)},
		schemes:   &fakeSchemeStore{},
		rules:     &fakeRuleStore{},
	}
	h.ledger = &fakeLedgerStore{rows: make(map[ledgerKey]*models.EligibilityRecord), schemes: h.schemes}
	h.svc = NewEligibilityService(h.citizens, h.interests, h.rules, h.ledger, syncThreshold, 4)
	h.svc.now = func() time.Time {
		return time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return h
}

func iptr(v int) *int { return &v }

func fptr(v float64) *float64 { return &v }

// seedScholarship wires one citizen interested in the Student category and
// a scholarship scheme restricted by age, income ceiling, location and
// education.
func (h *engineHarness) seedScholarship() {
	income := 200000.0
	h.citizens.set(&models.Citizen{
		ID:        1,
		FullName:  "Anjali Menon",
		DOB:       time.Date(2004, time.March, 15, 0, 0, 0, 0, time.UTC),
		Gender:    "Female",
		Income:    &income,
		Address:   "Kochi, Kerala",
		Education: "Graduate",
	})
	h.interests.byCitizen[1] = []int64{10}
	h.schemes.schemes = []*models.Scheme{
		{ID: 100, Name: "State Merit Scholarship", TargetCategory: 10, IsActive: true},
	}
	h.rules.rules = []*models.Rule{
		{
			ID:                1,
			SchemeID:          100,
			CategoryID:        10,
			AgeMin:            iptr(15),
			AgeMax:            iptr(35),
			MaxIncome:         fptr(250000),
			Location:          "Kerala",
			EducationRequired: "12th Pass",
		},
	}
}

func TestEvaluateCitizenWritesEligibleVerdict(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()

	err := h.svc.EvaluateCitizen(context.Background(), 1)
	require.NoError(t, err)

	record, ok := h.ledger.get(1, 100)
	require.True(t, ok)
	assert.Equal(t, models.EligibilityStatusEligible, record.Status)
	assert.Equal(t, "Matched all eligibility criteria", record.Reason)
}

func TestEvaluateCitizenIsIdempotent(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()

	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))
	first, _ := h.ledger.get(1, 100)

	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))
	second, _ := h.ledger.get(1, 100)

	assert.Equal(t, 1, h.ledger.count())
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Reason, second.Reason)
}

func TestEvaluateCitizenFlipsVerdictAfterProfileEdit(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()
	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))

	raised := 300000.0
	citizen, err := h.citizens.GetByID(context.Background(), 1)
	require.NoError(t, err)
	citizen.Income = &raised
	h.citizens.set(citizen)

	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))

	record, ok := h.ledger.get(1, 100)
	require.True(t, ok)
	assert.Equal(t, models.EligibilityStatusNotEligible, record.Status)
	assert.Equal(t, "Annual income must be <= Rs.250000.00", record.Reason)
	assert.Equal(t, 1, h.ledger.count())
}

func TestEvaluateCitizenSkipsSchemesWithoutRules(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()
	h.schemes.schemes = append(h.schemes.schemes,
		&models.Scheme{ID: 101, Name: "Ruleless Pilot Scheme", TargetCategory: 10, IsActive: true})

	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))

	_, ok := h.ledger.get(1, 101)
	assert.False(t, ok, "a scheme with no rules must not produce a verdict")
	assert.Equal(t, 1, h.ledger.count())
}

func TestEvaluateCitizenUnknownCitizen(t *testing.T) {
	h := newEngineHarness(25)

	err := h.svc.EvaluateCitizen(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrCitizenNotFound)
}

func TestEvaluateCitizenKeepsOtherCategoryVerdicts(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()
	h.interests.byCitizen[1] = []int64{10, 20}
	h.schemes.schemes = append(h.schemes.schemes,
		&models.Scheme{ID: 200, Name: "Farmer Support", TargetCategory: 20, IsActive: true})
	h.rules.rules = append(h.rules.rules,
		&models.Rule{ID: 2, SchemeID: 200, CategoryID: 20, AgeMin: iptr(18)})

	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))
	require.Equal(t, 2, h.ledger.count())

	// Dropping one interest narrows future batches but leaves verdicts from
	// the remaining interests intact.
	h.interests.byCitizen[1] = []int64{10}
	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))

	_, ok := h.ledger.get(1, 100)
	assert.True(t, ok)
}

func TestEvaluateCitizenCoversSchemesOutsideInterestCategories(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()

	// Scheme 300 targets a category the citizen never selected, but one of
	// its rules is filed under the citizen's category, so it still gets a
	// verdict.
	h.schemes.schemes = append(h.schemes.schemes,
		&models.Scheme{ID: 300, Name: "Cross Listed Grant", TargetCategory: 20, IsActive: true})
	h.rules.rules = append(h.rules.rules,
		&models.Rule{ID: 3, SchemeID: 300, CategoryID: 10, AgeMin: iptr(15)})

	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))

	record, ok := h.ledger.get(1, 300)
	require.True(t, ok, "a rule in a selected category must produce a verdict for its scheme")
	assert.Equal(t, models.EligibilityStatusEligible, record.Status)
	assert.Equal(t, 2, h.ledger.count())
}

func TestEvaluateCitizenLastRuleWinsPerScheme(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()
	// Citizen 1 is 22: the first rule fails, the second passes. The stored
	// verdict follows the last rule in id order.
	h.rules.rules = []*models.Rule{
		{ID: 1, SchemeID: 100, CategoryID: 10, AgeMin: iptr(60)},
		{ID: 2, SchemeID: 100, CategoryID: 10, AgeMin: iptr(18)},
	}

	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))

	record, ok := h.ledger.get(1, 100)
	require.True(t, ok)
	assert.Equal(t, models.EligibilityStatusEligible, record.Status)
	assert.Equal(t, 1, h.ledger.count())

	// Reversed order: the failing rule is now last and its reason sticks.
	h.rules.rules = []*models.Rule{
		{ID: 1, SchemeID: 100, CategoryID: 10, AgeMin: iptr(18)},
		{ID: 2, SchemeID: 100, CategoryID: 10, AgeMin: iptr(60)},
	}

	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))

	record, ok = h.ledger.get(1, 100)
	require.True(t, ok)
	assert.Equal(t, models.EligibilityStatusNotEligible, record.Status)
	assert.Equal(t, "Minimum age required: 60 years", record.Reason)
	assert.Equal(t, 1, h.ledger.count())
}

// overlapTrackingLedger flags ledger writes whose critical sections
// interleave.
type overlapTrackingLedger struct {
	fakeLedgerStore
	active   int32
	overlaps int32
}

func (f *overlapTrackingLedger) UpsertBatch(ctx context.Context, records []*models.EligibilityRecord) error {
	if atomic.AddInt32(&f.active, 1) > 1 {
		atomic.AddInt32(&f.overlaps, 1)
	}
	defer atomic.AddInt32(&f.active, -1)
	time.Sleep(5 * time.Millisecond)
	return f.fakeLedgerStore.UpsertBatch(ctx, records)
}

func TestEvaluateCitizenSerializesSameCitizen(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()

	ledger := &overlapTrackingLedger{
		fakeLedgerStore: fakeLedgerStore{rows: make(map[ledgerKey]*models.EligibilityRecord), schemes: h.schemes},
	}
	svc := NewEligibilityService(h.citizens, h.interests, h.rules, ledger, 25, 4)
	svc.now = h.svc.now

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.EvaluateCitizen(context.Background(), 1))
		}()
	}
	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&ledger.overlaps),
		"evaluations of the same citizen must not interleave")
	assert.Equal(t, 1, ledger.count())
}

func TestOnRuleChangedSyncFanout(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()

	income := 180000.0
	h.citizens.set(&models.Citizen{
		ID:        2,
		FullName:  "Ravi Kumar",
		DOB:       time.Date(2000, time.May, 20, 0, 0, 0, 0, time.UTC),
		Gender:    "Male",
		Income:    &income,
		Address:   "Thrissur, Kerala",
		Education: "10th Pass",
	})
	h.interests.byCitizen[2] = []int64{10}

	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))
	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 2))

	first, _ := h.ledger.get(1, 100)
	second, _ := h.ledger.get(2, 100)
	assert.Equal(t, models.EligibilityStatusEligible, first.Status)
	assert.Equal(t, models.EligibilityStatusNotEligible, second.Status)
	assert.Equal(t, "Required education: 12th Pass", second.Reason)

	// Loosening the education requirement flips citizen 2 without creating
	// duplicate ledger rows.
	h.rules.replace(1, &models.Rule{
		ID: 1, SchemeID: 100, CategoryID: 10,
		AgeMin: iptr(15), AgeMax: iptr(40), MaxIncome: fptr(250000), Location: "Kerala",
	})

	require.NoError(t, h.svc.OnRuleChanged(context.Background(), 10))

	second, _ = h.ledger.get(2, 100)
	assert.Equal(t, models.EligibilityStatusEligible, second.Status)
	assert.Equal(t, 2, h.ledger.count())
}

func TestOnRuleChangedBackgroundFanout(t *testing.T) {
	h := newEngineHarness(0) // every fan-out goes to the background pool
	h.seedScholarship()

	require.NoError(t, h.svc.OnRuleChanged(context.Background(), 10))

	assert.Eventually(t, func() bool {
		record, ok := h.ledger.get(1, 100)
		return ok && record.Status == models.EligibilityStatusEligible
	}, 2*time.Second, 10*time.Millisecond)
}

func TestOnRuleChangedNoInterestedCitizens(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()

	require.NoError(t, h.svc.OnRuleChanged(context.Background(), 99))
	assert.Equal(t, 0, h.ledger.count())
}

func TestListEligibleSchemesAttachesMatchScore(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()
	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))

	matches, err := h.svc.ListEligibleSchemes(context.Background(), 1, repositories.SchemeFilter{})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, "State Merit Scholarship", matches[0].Scheme.Name)
	assert.Equal(t, 100, matches[0].MatchScore)
}

func TestListEligibleSchemesExcludesInactive(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()
	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))

	h.schemes.schemes[0].IsActive = false

	matches, err := h.svc.ListEligibleSchemes(context.Background(), 1, repositories.SchemeFilter{})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestListLedgerIncludesBlockedVerdicts(t *testing.T) {
	h := newEngineHarness(25)
	h.seedScholarship()

	raised := 400000.0
	citizen, err := h.citizens.GetByID(context.Background(), 1)
	require.NoError(t, err)
	citizen.Income = &raised
	h.citizens.set(citizen)

	require.NoError(t, h.svc.EvaluateCitizen(context.Background(), 1))

	records, err := h.svc.ListLedger(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.EligibilityStatusNotEligible, records[0].Status)
	assert.Equal(t, "Annual income must be <= Rs.250000.00", records[0].Reason)
}
