package dto

// CreateCitizenRequest represents a request to register a citizen profile.
// DOB uses the 2006-01-02 date layout.
type CreateCitizenRequest struct {
	FullName   string   `json:"fullName" binding:"required,max=255" example:"Anjali Menon"`
	DOB        string   `json:"dob" binding:"required,datetime=2006-01-02" example:"2004-03-15"`
	Gender     string   `json:"gender" binding:"omitempty,max=20" example:"Female"`
	Email      string   `json:"email" binding:"omitempty,email,max=255" example:"anjali@example.com"`
	Phone      string   `json:"phone" binding:"omitempty,max=20" example:"9876543210"`
	AadhaarNo  string   `json:"aadhaarNo" binding:"required,len=12,numeric" example:"123456789012"`
	Address    string   `json:"address" binding:"omitempty,max=255" example:"Kochi, Kerala"`
	Income     *float64 `json:"income" binding:"omitempty,gte=0" example:"200000"`
	Occupation string   `json:"occupation" binding:"omitempty,max=100" example:"Student"`
	Education  string   `json:"education" binding:"omitempty,max=100" example:"Graduate"`
}

// UpdateCitizenRequest represents a request to update a citizen profile.
// Aadhaar is immutable after registration and intentionally absent.
type UpdateCitizenRequest struct {
	FullName   string   `json:"fullName" binding:"required,max=255" example:"Anjali Menon"`
	DOB        string   `json:"dob" binding:"required,datetime=2006-01-02" example:"2004-03-15"`
	Gender     string   `json:"gender" binding:"omitempty,max=20" example:"Female"`
	Email      string   `json:"email" binding:"omitempty,email,max=255" example:"anjali@example.com"`
	Phone      string   `json:"phone" binding:"omitempty,max=20" example:"9876543210"`
	Address    string   `json:"address" binding:"omitempty,max=255" example:"Kochi, Kerala"`
	Income     *float64 `json:"income" binding:"omitempty,gte=0" example:"200000"`
	Occupation string   `json:"occupation" binding:"omitempty,max=100" example:"Student"`
	Education  string   `json:"education" binding:"omitempty,max=100" example:"Graduate"`
}
