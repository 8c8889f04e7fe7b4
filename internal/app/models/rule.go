package models

// Rule defines one eligibility rule row from the 'rules' table. A rule
// belongs to exactly one (scheme, category) pair and expresses a conjunction
// of optional constraints; a nil pointer or empty string means "no
// constraint on this dimension".
//
// MinIncome, PensionStatus, DisabilityCert, UnemploymentStatus and
// BusinessTurnoverLimit are stored but not enforced by the evaluator. This
// mirrors the documented baseline behavior; enforcing them would change
// existing eligibility outcomes.
type Rule struct {
	ID                    int64    `json:"id" db:"id" example:"1"`
	SchemeID              int64    `json:"schemeId" db:"scheme_id" example:"1"`
	CategoryID            int64    `json:"categoryId" db:"category_id" example:"1"`
	AgeMin                *int     `json:"ageMin,omitempty" db:"age_min" example:"15"`
	AgeMax                *int     `json:"ageMax,omitempty" db:"age_max" example:"35"`
	Gender                string   `json:"gender,omitempty" db:"gender" example:"Any"`
	Location              string   `json:"location,omitempty" db:"location" example:"Kerala"`
	MinIncome             *float64 `json:"minIncome,omitempty" db:"min_income"`
	MaxIncome             *float64 `json:"maxIncome,omitempty" db:"max_income" example:"250000"`
	EducationRequired     string   `json:"educationRequired,omitempty" db:"education_required" example:"12th Pass"`
	PensionStatus         *bool    `json:"pensionStatus,omitempty" db:"pension_status"`
	DisabilityCert        *bool    `json:"disabilityCert,omitempty" db:"disability_cert"`
	UnemploymentStatus    *bool    `json:"unemploymentStatus,omitempty" db:"unemployment_status"`
	BusinessTurnoverLimit *float64 `json:"businessTurnoverLimit,omitempty" db:"business_turnover_limit"`
}
