package dto

// CreateApplicationRequest represents a citizen applying to a scheme
type CreateApplicationRequest struct {
	SchemeID int64  `json:"schemeId" binding:"required,gt=0" example:"1"`
	Remarks  string `json:"remarks" binding:"omitempty"`
}

// UpdateApplicationStatusRequest represents an admin decision on an application
type UpdateApplicationStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=Approved Rejected" example:"Approved"`
	Remarks string `json:"remarks" binding:"omitempty"`
}
