package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/smart-beneficiary/sbms/internal/app/eligibility"
	"github.com/smart-beneficiary/sbms/internal/app/models"
	"github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/pkg/logger"
)

// Narrow store interfaces keep the evaluator orchestration testable without
// a database.

type citizenGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Citizen, error)
}

type interestReader interface {
	CategoryIDsByCitizen(ctx context.Context, citizenID int64) ([]int64, error)
	CitizenIDsByCategory(ctx context.Context, categoryID int64) ([]int64, error)
}

type ruleReader interface {
	GetByCategoryIDs(ctx context.Context, categoryIDs []int64) ([]*models.Rule, error)
	GetBySchemeID(ctx context.Context, schemeID int64) ([]*models.Rule, error)
}

type ledgerStore interface {
	UpsertBatch(ctx context.Context, records []*models.EligibilityRecord) error
	ListByCitizen(ctx context.Context, citizenID int64) ([]*models.EligibilityRecord, error)
	ListEligible(ctx context.Context, citizenID int64, filter repositories.SchemeFilter) ([]*models.EligibleScheme, error)
}

// EligibilityService orchestrates rule evaluation: it assembles a citizen's
// profile and candidate rule set, runs the engine, and persists the verdicts
// to the ledger. Recomputation granularity is always the whole citizen.
type EligibilityService struct {
	citizens  citizenGetter
	interests interestReader
	rules     ruleReader
	ledger    ledgerStore

	// Per-citizen mutexes serialize concurrent evaluations of the same
	// citizen so ledger writes cannot interleave. Entries are never
	// evicted; the map grows with the set of citizen IDs seen by this
	// process.
	locks sync.Map

	syncFanoutThreshold int
	fanoutWorkers       int

	now func() time.Time
}

// NewEligibilityService creates a new eligibility service
func NewEligibilityService(
	citizens citizenGetter,
	interests interestReader,
	rules ruleReader,
	ledger ledgerStore,
	syncFanoutThreshold int,
	fanoutWorkers int,
) *EligibilityService {
	if syncFanoutThreshold < 0 {
		syncFanoutThreshold = 0
	}
	if fanoutWorkers < 1 {
		fanoutWorkers = 1
	}
	return &EligibilityService{
		citizens:            citizens,
		interests:           interests,
		rules:               rules,
		ledger:              ledger,
		syncFanoutThreshold: syncFanoutThreshold,
		fanoutWorkers:       fanoutWorkers,
		now:                 time.Now,
	}
}

func (s *EligibilityService) lockCitizen(citizenID int64) func() {
	v, _ := s.locks.LoadOrStore(citizenID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// EvaluateCitizen recomputes the full eligibility ledger for one citizen:
// every rule whose category the citizen selected is evaluated, regardless
// of which scheme the rule belongs to, and each reachable scheme gets a
// fresh verdict in one atomic batch. Schemes without rules produce no
// ledger row. The operation is idempotent; re-running it against an
// unchanged profile and rule catalog reproduces the same verdicts.
func (s *EligibilityService) EvaluateCitizen(ctx context.Context, citizenID int64) error {
	unlock := s.lockCitizen(citizenID)
	defer unlock()

	citizen, err := s.citizens.GetByID(ctx, citizenID)
	if err != nil {
		return err
	}

	categoryIDs, err := s.interests.CategoryIDsByCitizen(ctx, citizenID)
	if err != nil {
		return fmt.Errorf("error loading citizen interests: %w", err)
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	rules, err := s.rules.GetByCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return fmt.Errorf("error loading rules: %w", err)
	}

	evaluatedAt := s.now()
	profile := eligibility.ProfileOf(citizen, evaluatedAt)

	// One record per scheme. Rules arrive in rule-id order and every
	// rule's verdict overwrites its scheme's previous one, so the last
	// rule of a multi-rule scheme decides the stored verdict.
	var records []*models.EligibilityRecord
	recordIdx := make(map[int64]int)
	for _, rule := range rules {
		verdict := eligibility.Evaluate(profile, rule)
		if i, ok := recordIdx[rule.SchemeID]; ok {
			records[i].Status = verdict.Status
			records[i].Reason = verdict.Reason
			continue
		}
		recordIdx[rule.SchemeID] = len(records)
		records = append(records, &models.EligibilityRecord{
			CitizenID:   citizenID,
			SchemeID:    rule.SchemeID,
			Status:      verdict.Status,
			Reason:      verdict.Reason,
			EvaluatedAt: evaluatedAt,
		})
	}

	if err := s.ledger.UpsertBatch(ctx, records); err != nil {
		return fmt.Errorf("error writing eligibility ledger: %w", err)
	}

	logger.Debug().
		Int64("citizenId", citizenID).
		Int("schemes", len(records)).
		Msg("Citizen eligibility recomputed")

	return nil
}

// OnRuleChanged re-evaluates every citizen interested in the changed rule's
// category. Small populations are handled synchronously so the caller
// observes the updated ledger; large ones are handed to a bounded worker
// pool in the background.
func (s *EligibilityService) OnRuleChanged(ctx context.Context, categoryID int64) error {
	citizenIDs, err := s.interests.CitizenIDsByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("error loading interested citizens: %w", err)
	}
	if len(citizenIDs) == 0 {
		return nil
	}

	if len(citizenIDs) <= s.syncFanoutThreshold {
		for _, id := range citizenIDs {
			if err := s.EvaluateCitizen(ctx, id); err != nil {
				return fmt.Errorf("error re-evaluating citizen %d: %w", id, err)
			}
		}
		return nil
	}

	logger.Info().
		Int64("categoryId", categoryID).
		Int("citizens", len(citizenIDs)).
		Msg("Rule change fan-out moved to background")

	go s.fanout(categoryID, citizenIDs)
	return nil
}

// fanout runs a background re-evaluation round. It is detached from the
// triggering request's context so an early client disconnect cannot leave
// the ledger half-updated.
func (s *EligibilityService) fanout(categoryID int64, citizenIDs []int64) {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(s.fanoutWorkers)

	for _, id := range citizenIDs {
		id := id
		g.Go(func() error {
			if err := s.EvaluateCitizen(ctx, id); err != nil {
				logger.Error().
					Err(err).
					Int64("citizenId", id).
					Msg("Background re-evaluation failed")
			}
			// Per-citizen failures are logged, never fatal to the round.
			return nil
		})
	}

	_ = g.Wait()

	logger.Info().
		Int64("categoryId", categoryID).
		Int("citizens", len(citizenIDs)).
		Msg("Rule change fan-out completed")
}

// ListEligibleSchemes returns the citizen's current Eligible matches joined
// with active schemes, each annotated with an advisory match score.
func (s *EligibilityService) ListEligibleSchemes(ctx context.Context, citizenID int64, filter repositories.SchemeFilter) ([]*models.EligibleScheme, error) {
	citizen, err := s.citizens.GetByID(ctx, citizenID)
	if err != nil {
		return nil, err
	}

	matches, err := s.ledger.ListEligible(ctx, citizenID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing eligible schemes: %w", err)
	}

	profile := eligibility.ProfileOf(citizen, s.now())
	for _, match := range matches {
		rules, err := s.rules.GetBySchemeID(ctx, match.Scheme.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading scheme rules: %w", err)
		}
		match.MatchScore = eligibility.MatchScore(profile, rules)
	}

	return matches, nil
}

// ListLedger returns every stored verdict for a citizen, eligible or not,
// with the blocking reason
func (s *EligibilityService) ListLedger(ctx context.Context, citizenID int64) ([]*models.EligibilityRecord, error) {
	if _, err := s.citizens.GetByID(ctx, citizenID); err != nil {
		return nil, err
	}
	return s.ledger.ListByCitizen(ctx, citizenID)
}
