package dto

// CreateAnnouncementRequest represents a request to publish an announcement
type CreateAnnouncementRequest struct {
	Message  string `json:"message" binding:"required" example:"Scholarship portal closes on 31 October"`
	IsActive *bool  `json:"isActive" binding:"omitempty" example:"true"`
}

// SetAnnouncementActiveRequest toggles an announcement's visibility
type SetAnnouncementActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required" example:"false"`
}
