package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smart-beneficiary/sbms/internal/app/models"
)

func iptr(v int) *int         { return &v }
func fptr(v float64) *float64 { return &v }

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func baseProfile() Profile {
	return Profile{
		Age:       22,
		Gender:    "Female",
		Income:    fptr(200000),
		Address:   "Kerala",
		Education: "Graduate",
	}
}

func TestEvaluateAllChecksPass(t *testing.T) {
	rule := &models.Rule{
		AgeMin:            iptr(15),
		AgeMax:            iptr(35),
		MaxIncome:         fptr(250000),
		Gender:            "Any",
		EducationRequired: "Any",
	}

	v := Evaluate(baseProfile(), rule)
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)
	assert.Equal(t, ReasonMatched, v.Reason)
}

func TestEvaluateEmptyRuleIsUnconstrained(t *testing.T) {
	v := Evaluate(baseProfile(), &models.Rule{})
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)
	assert.Equal(t, ReasonMatched, v.Reason)
}

func TestEvaluateAgeBounds(t *testing.T) {
	p := baseProfile() // age 22

	v := Evaluate(p, &models.Rule{AgeMin: iptr(23)})
	assert.Equal(t, models.EligibilityStatusNotEligible, v.Status)
	assert.Equal(t, "Minimum age required: 23 years", v.Reason)

	v = Evaluate(p, &models.Rule{AgeMax: iptr(21)})
	assert.Equal(t, models.EligibilityStatusNotEligible, v.Status)
	assert.Equal(t, "Maximum age allowed: 21 years", v.Reason)

	// Boundaries are inclusive on both ends.
	v = Evaluate(p, &models.Rule{AgeMin: iptr(22), AgeMax: iptr(22)})
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)
}

func TestEvaluateAgeBoundaryOnExactBirthday(t *testing.T) {
	today := day("2026-03-15")
	c := &models.Citizen{DOB: day("2001-03-15")}

	p := ProfileOf(c, today)
	assert.Equal(t, 25, p.Age)

	v := Evaluate(p, &models.Rule{AgeMin: iptr(25)})
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)

	v = Evaluate(p, &models.Rule{AgeMin: iptr(26)})
	assert.Equal(t, models.EligibilityStatusNotEligible, v.Status)
	assert.Equal(t, "Minimum age required: 26 years", v.Reason)
}

func TestEvaluateGender(t *testing.T) {
	p := baseProfile()

	// "Any"/"All" in any case never fails, regardless of profile gender.
	for _, g := range []string{"Any", "ANY", "any", "All", "all"} {
		v := Evaluate(p, &models.Rule{Gender: g})
		assert.Equal(t, models.EligibilityStatusEligible, v.Status, "gender %q", g)
	}

	// Case-insensitive match on a concrete gender.
	v := Evaluate(p, &models.Rule{Gender: "FEMALE"})
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)

	v = Evaluate(p, &models.Rule{Gender: "Male"})
	assert.Equal(t, models.EligibilityStatusNotEligible, v.Status)
	assert.Equal(t, "Scheme is for Male only", v.Reason)
}

func TestEvaluateIncomeCeiling(t *testing.T) {
	p := baseProfile()

	v := Evaluate(p, &models.Rule{MaxIncome: fptr(150000)})
	assert.Equal(t, models.EligibilityStatusNotEligible, v.Status)
	assert.Equal(t, "Annual income must be <= Rs.150000.00", v.Reason)

	// Equal to the ceiling passes.
	v = Evaluate(p, &models.Rule{MaxIncome: fptr(200000)})
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)

	// Unknown income passes the ceiling.
	p.Income = nil
	v = Evaluate(p, &models.Rule{MaxIncome: fptr(1)})
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)
}

func TestEvaluateMinIncomeIsInert(t *testing.T) {
	// min_income is stored but never enforced: documented baseline, not a
	// gap to fix.
	p := baseProfile() // income 200000
	v := Evaluate(p, &models.Rule{MinIncome: fptr(500000)})
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)
}

func TestEvaluateLocationSubstringIsCaseSensitive(t *testing.T) {
	p := baseProfile()
	p.Address = "Thrissur, Kerala"

	v := Evaluate(p, &models.Rule{Location: "Kerala"})
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)

	p.Address = "kerala, India"
	v = Evaluate(p, &models.Rule{Location: "Kerala"})
	assert.Equal(t, models.EligibilityStatusNotEligible, v.Status)
	assert.Equal(t, "Available only in Kerala", v.Reason)
}

func TestEvaluateEducationHierarchy(t *testing.T) {
	p := baseProfile()

	// Higher qualification satisfies a lower requirement.
	p.Education = "B.Tech"
	v := Evaluate(p, &models.Rule{EducationRequired: "10th Pass"})
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)

	// Lower qualification fails, requirement cited verbatim.
	p.Education = "10th Pass"
	v = Evaluate(p, &models.Rule{EducationRequired: "Graduate"})
	assert.Equal(t, models.EligibilityStatusNotEligible, v.Status)
	assert.Equal(t, "Required education: Graduate", v.Reason)

	// "Any" requirement passes everyone, even unrecognized education.
	p.Education = ""
	v = Evaluate(p, &models.Rule{EducationRequired: "any"})
	assert.Equal(t, models.EligibilityStatusEligible, v.Status)
}

func TestEvaluateFirstFailingCheckWins(t *testing.T) {
	// Rule fails on age, gender and income; the reason must come from the
	// age check alone.
	p := baseProfile()
	rule := &models.Rule{
		AgeMin:    iptr(60),
		Gender:    "Male",
		MaxIncome: fptr(1000),
	}

	v := Evaluate(p, rule)
	assert.Equal(t, models.EligibilityStatusNotEligible, v.Status)
	assert.Equal(t, "Minimum age required: 60 years", v.Reason)
}

func TestAgeOn(t *testing.T) {
	dob := day("1966-08-30")

	assert.Equal(t, 60, AgeOn(dob, day("2026-08-30"))) // birthday today
	assert.Equal(t, 59, AgeOn(dob, day("2026-08-29"))) // birthday tomorrow
	assert.Equal(t, 60, AgeOn(dob, day("2027-08-29")))
}
