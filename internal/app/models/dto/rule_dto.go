package dto

// RuleRequest represents a request to create or update an eligibility rule.
// Every constraint is optional; absent or empty means unconstrained.
type RuleRequest struct {
	SchemeID              int64    `json:"schemeId" binding:"required,gt=0" example:"1"`
	CategoryID            int64    `json:"categoryId" binding:"required,gt=0" example:"1"`
	AgeMin                *int     `json:"ageMin" binding:"omitempty,gte=0" example:"15"`
	AgeMax                *int     `json:"ageMax" binding:"omitempty,gte=0" example:"35"`
	Gender                string   `json:"gender" binding:"omitempty,max=10" example:"Any"`
	Location              string   `json:"location" binding:"omitempty,max=100" example:"Kerala"`
	MinIncome             *float64 `json:"minIncome" binding:"omitempty,gte=0"`
	MaxIncome             *float64 `json:"maxIncome" binding:"omitempty,gte=0" example:"250000"`
	EducationRequired     string   `json:"educationRequired" binding:"omitempty,max=100" example:"12th Pass"`
	PensionStatus         *bool    `json:"pensionStatus" binding:"omitempty"`
	DisabilityCert        *bool    `json:"disabilityCert" binding:"omitempty"`
	UnemploymentStatus    *bool    `json:"unemploymentStatus" binding:"omitempty"`
	BusinessTurnoverLimit *float64 `json:"businessTurnoverLimit" binding:"omitempty,gte=0"`
}
