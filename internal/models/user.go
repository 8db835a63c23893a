package models

import "time"

// Medal tiers, used both for per-task awards and progress display.
const (
	MedalBronze = "bronze"
	MedalSilver = "silver"
	MedalGold   = "gold"
)

// User holds the account and its gamification state. Points only ever grow;
// Level is always recomputed from Points, never edited on its own.
type User struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `json:"-"` // mock credential store, stored as-is

	Points int `gorm:"default:0" json:"points"`
	Level  int `gorm:"default:1" json:"level"`

	BronzeMedals int `gorm:"default:0" json:"bronze_medals"`
	SilverMedals int `gorm:"default:0" json:"silver_medals"`
	GoldMedals   int `gorm:"default:0" json:"gold_medals"`

	Age    int    `json:"age"`
	Gender string `json:"gender"` // male, female, other
}

// Session marks the locally logged-in user. At most one row exists.
type Session struct {
	ID     uint   `gorm:"primarykey"`
	UserID string `gorm:"not null"`
}

// ValidMedal reports whether the medal tier is one of the closed set.
func ValidMedal(medal string) bool {
	switch medal {
	case MedalBronze, MedalSilver, MedalGold:
		return true
	}
	return false
}
