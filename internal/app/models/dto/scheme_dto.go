package dto

// CreateSchemeRequest represents a request to create a welfare scheme
type CreateSchemeRequest struct {
	Name             string `json:"name" binding:"required,max=255" example:"National Scholarship Portal"`
	Description      string `json:"description" binding:"omitempty"`
	TargetCategory   int64  `json:"targetCategory" binding:"required,gt=0" example:"1"`
	Benefits         string `json:"benefits" binding:"omitempty"`
	OfficialLink     string `json:"officialLink" binding:"omitempty,max=500"`
	RegistrationLink string `json:"registrationLink" binding:"omitempty,max=500"`
	BenefitType      string `json:"benefitType" binding:"omitempty,max=100" example:"Scholarship"`
	State            string `json:"state" binding:"omitempty,max=100" example:"Kerala"`
	IsActive         *bool  `json:"isActive" binding:"omitempty" example:"true"`
}

// UpdateSchemeRequest represents a request to update a welfare scheme
type UpdateSchemeRequest struct {
	Name             string `json:"name" binding:"required,max=255" example:"National Scholarship Portal"`
	Description      string `json:"description" binding:"omitempty"`
	TargetCategory   int64  `json:"targetCategory" binding:"required,gt=0" example:"1"`
	Benefits         string `json:"benefits" binding:"omitempty"`
	OfficialLink     string `json:"officialLink" binding:"omitempty,max=500"`
	RegistrationLink string `json:"registrationLink" binding:"omitempty,max=500"`
	BenefitType      string `json:"benefitType" binding:"omitempty,max=100" example:"Scholarship"`
	State            string `json:"state" binding:"omitempty,max=100" example:"Kerala"`
	IsActive         *bool  `json:"isActive" binding:"omitempty" example:"true"`
}
