// Package eligibility implements the rule engine core: a pure evaluator
// over in-memory profiles and rules, with no database access, so verdicts
// are reproducible and unit-testable in isolation.
package eligibility

import (
	"fmt"
	"strings"
	"time"

	"github.com/smart-beneficiary/sbms/internal/app/models"
)

// ReasonMatched is the reason stored when every check of a rule passes.
const ReasonMatched = "Matched all eligibility criteria"

// Profile is the evaluator's view of a citizen at a point in time. Age is
// derived from the date of birth when the profile is built, never stored.
type Profile struct {
	Age       int
	Gender    string
	Income    *float64 // nil means unknown/unbounded; passes the income ceiling
	Address   string
	Education string
}

// Verdict is the outcome of evaluating one rule: a status plus the single
// most actionable blocking reason. It is a value, never shared state.
type Verdict struct {
	Status models.EligibilityStatus
	Reason string
}

// ProfileOf builds an evaluation profile from a citizen as of the given day.
func ProfileOf(c *models.Citizen, on time.Time) Profile {
	return Profile{
		Age:       AgeOn(c.DOB, on),
		Gender:    c.Gender,
		Income:    c.Income,
		Address:   c.Address,
		Education: c.Education,
	}
}

// AgeOn returns the completed years between dob and the given day.
func AgeOn(dob, on time.Time) int {
	years := on.Year() - dob.Year()
	if dob.AddDate(years, 0, 0).After(on) {
		years--
	}
	return years
}

// Evaluate applies a rule's checks as a short-circuit conjunction in a fixed
// order: age bounds, gender, income ceiling, location, education. The first
// failing check wins and later checks are skipped. Cheap numeric checks run
// before string checks, and the surfaced reason is the single blocking
// factor, not an aggregate.
//
// min_income and the pension/disability/unemployment/turnover columns are
// deliberately not enforced; they are stored as informational fields only.
func Evaluate(p Profile, r *models.Rule) Verdict {
	if r.AgeMin != nil && p.Age < *r.AgeMin {
		return notEligible(fmt.Sprintf("Minimum age required: %d years", *r.AgeMin))
	}
	if r.AgeMax != nil && p.Age > *r.AgeMax {
		return notEligible(fmt.Sprintf("Maximum age allowed: %d years", *r.AgeMax))
	}
	if r.Gender != "" && !genderOpen(r.Gender) && !strings.EqualFold(r.Gender, p.Gender) {
		return notEligible(fmt.Sprintf("Scheme is for %s only", r.Gender))
	}
	if r.MaxIncome != nil && p.Income != nil && *p.Income > *r.MaxIncome {
		return notEligible(fmt.Sprintf("Annual income must be <= Rs.%.2f", *r.MaxIncome))
	}
	// Case-sensitive substring match over the free-text address. Fragile for
	// mixed-case addresses, but documented baseline behavior: correcting it
	// would change which citizens qualify.
	if r.Location != "" && !strings.Contains(p.Address, r.Location) {
		return notEligible(fmt.Sprintf("Available only in %s", r.Location))
	}
	if req := r.EducationRequired; req != "" && !strings.EqualFold(req, "any") {
		if EducationLevel(p.Education) < EducationLevel(req) {
			return notEligible("Required education: " + req)
		}
	}
	return Verdict{Status: models.EligibilityStatusEligible, Reason: ReasonMatched}
}

func notEligible(reason string) Verdict {
	return Verdict{Status: models.EligibilityStatusNotEligible, Reason: reason}
}

// genderOpen reports whether a rule's gender constraint admits everyone.
func genderOpen(g string) bool {
	return strings.EqualFold(g, "any") || strings.EqualFold(g, "all")
}
