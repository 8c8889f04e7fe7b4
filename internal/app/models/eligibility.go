package models

import "time"

// EligibilityRecord is one row of the 'citizen_eligibility' ledger: the last
// verdict for a (citizen, scheme) pair, unique per pair. It is a derived
// cache: re-running the evaluator against the current profile and rule
// catalog must always reproduce it.
type EligibilityRecord struct {
	ID          int64             `json:"id" db:"id"`
	CitizenID   int64             `json:"citizenId" db:"citizen_id"`
	SchemeID    int64             `json:"schemeId" db:"scheme_id"`
	Status      EligibilityStatus `json:"status" db:"status" example:"Eligible"`
	Reason      string            `json:"reason" db:"reason" example:"Matched all eligibility criteria"`
	EvaluatedAt time.Time         `json:"evaluatedAt" db:"evaluated_at"`
	Scheme      *Scheme           `json:"scheme,omitempty"` // Relation, no db tag
}

// EligibleScheme is the read-path join of an Eligible ledger row with its
// scheme and category, plus the advisory match score attached by the
// service layer.
type EligibleScheme struct {
	Scheme       Scheme            `json:"scheme"`
	CategoryName string            `json:"categoryName"`
	Status       EligibilityStatus `json:"status"`
	Reason       string            `json:"reason"`
	EvaluatedAt  time.Time         `json:"evaluatedAt"`
	MatchScore   int               `json:"matchScore" example:"100"`
}
