package models

import (
	"time"
)

// Citizen defines the citizen profile based on the 'citizens' table.
// Age is intentionally not a column: it is derived from DOB at evaluation
// time, so a citizen crossing an age boundary changes eligibility without
// any profile write.
type Citizen struct {
	ID         int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the citizen
	FullName   string    `json:"fullName" db:"full_name" example:"Anita Kumari"`          // Citizen's full name
	DOB        time.Time `json:"dob" db:"dob" example:"2004-03-15T00:00:00Z"`             // Date of birth
	Gender     string    `json:"gender" db:"gender" example:"Female"`                     // Free-text gender (Male/Female/Other)
	Email      string    `json:"email" db:"email" example:"anita@example.com"`            // Contact email
	Phone      string    `json:"phone" db:"phone" example:"9876543210"`                   // Contact phone
	AadhaarNo  string    `json:"aadhaarNo" db:"aadhaar_no" example:"1234-5678-9012"`      // Unique national identifier
	Address    string    `json:"address" db:"address" example:"Thrissur, Kerala"`         // Free-text address, used for location matching
	Income     *float64  `json:"income,omitempty" db:"income" example:"200000"`           // Annual income; nil means unknown/unbounded
	Occupation string    `json:"occupation" db:"occupation" example:"Student"`            // Occupation
	Education  string    `json:"education" db:"education" example:"Graduate"`             // Free-text education, mapped to an ordinal level
	CreatedAt  time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}
