package models

// EligibilityStatus is the verdict stored on a citizen/scheme ledger row
type EligibilityStatus string

const (
	EligibilityStatusEligible    EligibilityStatus = "Eligible"
	EligibilityStatusNotEligible EligibilityStatus = "Not Eligible"
	EligibilityStatusPending     EligibilityStatus = "Pending"
)

// ApplicationStatus represents the lifecycle state of a scheme application
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "Pending"
	ApplicationStatusApproved  ApplicationStatus = "Approved"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "Withdrawn"
)

// GrievanceStatus represents the lifecycle state of a grievance
type GrievanceStatus string

const (
	GrievanceStatusOpen     GrievanceStatus = "Open"
	GrievanceStatusResolved GrievanceStatus = "Resolved"
)

// SchemeAuditAction describes a write recorded in the scheme audit log
type SchemeAuditAction string

const (
	SchemeAuditInserted SchemeAuditAction = "INSERTED"
	SchemeAuditUpdated  SchemeAuditAction = "UPDATED"
	SchemeAuditDeleted  SchemeAuditAction = "DELETED"
)
