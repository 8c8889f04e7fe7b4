package eligibility

import (
	"math"
	"strings"

	"github.com/smart-beneficiary/sbms/internal/app/models"
)

const (
	// FallbackScore is returned when a scheme has no rules, and on any
	// internal scoring failure.
	FallbackScore = 75
	// UnconstrainedScore is returned when rules exist but constrain none of
	// the scored dimensions.
	UnconstrainedScore = 80
)

// MatchScore computes the advisory 0-100 ranking score for a scheme's rules
// against a profile. Each constrained dimension (age bounds, gender, income
// bounds) counts as one criterion; the score is the rounded percentage of
// satisfied criteria. It is a ranking aid, not a gate: it never influences
// the Eligible/Not-Eligible verdict and never fails, falling back to
// FallbackScore on any internal error.
func MatchScore(p Profile, rules []*models.Rule) (score int) {
	defer func() {
		if r := recover(); r != nil {
			score = FallbackScore
		}
	}()

	if len(rules) == 0 {
		return FallbackScore
	}

	total, satisfied := 0, 0
	for _, r := range rules {
		if r.AgeMin != nil || r.AgeMax != nil {
			total++
			if (r.AgeMin == nil || p.Age >= *r.AgeMin) && (r.AgeMax == nil || p.Age <= *r.AgeMax) {
				satisfied++
			}
		}
		if strings.TrimSpace(r.Gender) != "" {
			total++
			if genderOpen(r.Gender) || strings.EqualFold(r.Gender, p.Gender) {
				satisfied++
			}
		}
		if r.MinIncome != nil || r.MaxIncome != nil {
			total++
			if r.MaxIncome == nil || p.Income == nil || *p.Income <= *r.MaxIncome {
				satisfied++
			}
		}
	}

	if total == 0 {
		return UnconstrainedScore
	}

	score = int(math.Round(100 * float64(satisfied) / float64(total)))
	if score > 100 {
		score = 100
	}
	return score
}
