package dto

// CreateGrievanceRequest represents a citizen raising a grievance, optionally
// tied to a scheme
type CreateGrievanceRequest struct {
	SchemeID  *int64 `json:"schemeId" binding:"omitempty,gt=0" example:"1"`
	Complaint string `json:"complaint" binding:"required" example:"Application pending for over 60 days"`
}

// ResolveGrievanceRequest represents an admin resolving a grievance
type ResolveGrievanceRequest struct {
	AdminRemark string `json:"adminRemark" binding:"required" example:"Application approved on review"`
}
