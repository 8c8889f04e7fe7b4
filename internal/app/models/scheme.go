package models

import "time"

// Scheme defines a welfare program based on the 'schemes' table.
// The evaluator treats schemes as read-only input; IsActive is a display
// concern filtered at the read path, never inside evaluation.
type Scheme struct {
	ID               int64     `json:"id" db:"id" example:"1"`
	Name             string    `json:"name" db:"name" example:"National Scholarship Portal"`
	Description      string    `json:"description" db:"description"`
	TargetCategory   int64     `json:"targetCategory" db:"target_category" example:"1"`
	Benefits         string    `json:"benefits" db:"benefits"`
	OfficialLink     string    `json:"officialLink" db:"official_link"`
	RegistrationLink string    `json:"registrationLink" db:"registration_link"`
	BenefitType      string    `json:"benefitType" db:"benefit_type" example:"Scholarship"`
	State            string    `json:"state" db:"state" example:"Kerala"`
	IsActive         bool      `json:"isActive" db:"is_active" example:"true"`
	Category         *Category `json:"category,omitempty"` // Relation, no db tag
}

// SchemeAuditEntry is one row of the 'scheme_audit_log' table
type SchemeAuditEntry struct {
	ID         int64             `json:"id" db:"id"`
	SchemeID   int64             `json:"schemeId" db:"scheme_id"`
	Action     SchemeAuditAction `json:"action" db:"action"`
	ActionTime time.Time         `json:"actionTime" db:"action_time"`
}
