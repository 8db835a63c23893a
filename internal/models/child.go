package models

import "time"

// Child is a dependent profile that can be assigned tasks and accrues its own
// point total, independent of the owning user's points.
type Child struct {
	ID        string    `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"not null" json:"name"`
	Age         int    `json:"age"` // 1-18
	Points      int    `gorm:"default:0" json:"points"`
	AvatarColor string `json:"avatar_color"`
}
