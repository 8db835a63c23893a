package models

import "time"

// Voice types for spoken reminders.
const (
	VoiceFemale = "female"
	VoiceMale   = "male"
)

// VoiceSettings holds per-user reminder voice preferences.
type VoiceSettings struct {
	UserID    string    `gorm:"primarykey" json:"user_id"`
	UpdatedAt time.Time `json:"updated_at"`

	Enabled   bool   `gorm:"default:true" json:"enabled"`
	Volume    int    `gorm:"default:80" json:"volume"` // 0-100
	VoiceType string `gorm:"default:female" json:"voice_type"`
}

// NormalizeVoiceType maps unknown voice types to the female default.
func NormalizeVoiceType(voiceType string) string {
	if voiceType == VoiceMale {
		return VoiceMale
	}
	return VoiceFemale
}
