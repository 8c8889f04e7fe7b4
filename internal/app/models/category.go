package models

import "time"

// Category defines a beneficiary class based on the 'categories' table
type Category struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Name        string `json:"name" db:"name" example:"Student"`
	Description string `json:"description" db:"description" example:"Schemes for students and scholars"`
}

// CitizenCategory records a citizen's interest in a category, based on the
// 'citizen_categories' table. Unique per (citizen, category).
type CitizenCategory struct {
	ID         int64     `json:"id" db:"id"`
	CitizenID  int64     `json:"citizenId" db:"citizen_id"`
	CategoryID int64     `json:"categoryId" db:"category_id"`
	SelectedOn time.Time `json:"selectedOn" db:"selected_on"`
	Category   *Category `json:"category,omitempty"` // Relation, no db tag
}
