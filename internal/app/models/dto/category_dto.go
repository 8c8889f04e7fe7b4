package dto

// CreateCategoryRequest represents a request to create a beneficiary category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Student"`
	Description string `json:"description" binding:"omitempty" example:"Schemes for students and scholars"`
}

// AddInterestsRequest represents a request to register a citizen's interest
// in one or more categories
type AddInterestsRequest struct {
	CategoryIDs []int64 `json:"categoryIds" binding:"required,min=1,dive,gt=0" example:"1,2"`
}
