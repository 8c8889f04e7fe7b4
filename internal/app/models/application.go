package models

import "time"

// Application tracks a citizen's application to a scheme, based on the
// 'applications' table
type Application struct {
	ID        int64             `json:"id" db:"id"`
	CitizenID int64             `json:"citizenId" db:"citizen_id"`
	SchemeID  int64             `json:"schemeId" db:"scheme_id"`
	Status    ApplicationStatus `json:"status" db:"status" example:"Pending"`
	Remarks   string            `json:"remarks" db:"remarks"`
	AppliedOn time.Time         `json:"appliedOn" db:"applied_on"`
	Scheme    *Scheme           `json:"scheme,omitempty"` // Relation, no db tag
}
