package models

import "time"

// Announcement is a broadcast message shown to citizens, based on the
// 'announcements' table
type Announcement struct {
	ID        int64     `json:"id" db:"id"`
	Message   string    `json:"message" db:"message"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
