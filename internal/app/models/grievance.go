package models

import "time"

// Grievance tracks a complaint raised by a citizen, optionally against a
// specific scheme, based on the 'grievances' table
type Grievance struct {
	ID          int64           `json:"id" db:"id"`
	CitizenID   int64           `json:"citizenId" db:"citizen_id"`
	SchemeID    *int64          `json:"schemeId,omitempty" db:"scheme_id"` // nil when not scheme-specific
	Complaint   string          `json:"complaint" db:"complaint"`
	Status      GrievanceStatus `json:"status" db:"status" example:"Open"`
	AdminRemark string          `json:"adminRemark,omitempty" db:"admin_remark"`
	RaisedOn    time.Time       `json:"raisedOn" db:"raised_on"`
	ResolvedOn  *time.Time      `json:"resolvedOn,omitempty" db:"resolved_on"`
	Scheme      *Scheme         `json:"scheme,omitempty"` // Relation, no db tag
}
