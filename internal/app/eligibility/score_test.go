package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smart-beneficiary/sbms/internal/app/models"
)

func TestMatchScoreNoRules(t *testing.T) {
	assert.Equal(t, FallbackScore, MatchScore(baseProfile(), nil))
}

func TestMatchScoreNoConstrainedDimensions(t *testing.T) {
	// Location and education are not scored dimensions.
	rules := []*models.Rule{{Location: "Kerala", EducationRequired: "Graduate"}}
	assert.Equal(t, UnconstrainedScore, MatchScore(baseProfile(), rules))
}

func TestMatchScoreAllSatisfied(t *testing.T) {
	rules := []*models.Rule{{
		AgeMin:    iptr(18),
		AgeMax:    iptr(35),
		Gender:    "Any",
		MaxIncome: fptr(250000),
	}}
	assert.Equal(t, 100, MatchScore(baseProfile(), rules))
}

func TestMatchScorePartiallySatisfied(t *testing.T) {
	// Age and gender satisfied, income ceiling breached: 2/3 -> 67.
	rules := []*models.Rule{{
		AgeMin:    iptr(18),
		Gender:    "Female",
		MaxIncome: fptr(100000),
	}}
	assert.Equal(t, 67, MatchScore(baseProfile(), rules))
}

func TestMatchScoreUnknownIncomeSatisfiesCeiling(t *testing.T) {
	p := baseProfile()
	p.Income = nil
	rules := []*models.Rule{{MaxIncome: fptr(1)}}
	assert.Equal(t, 100, MatchScore(p, rules))
}

func TestMatchScoreCountsCriteriaAcrossRules(t *testing.T) {
	// Two rules: first satisfies both dimensions, second fails its one.
	rules := []*models.Rule{
		{AgeMin: iptr(18), Gender: "Female"},
		{Gender: "Male"},
	}
	assert.Equal(t, 67, MatchScore(baseProfile(), rules))
}
