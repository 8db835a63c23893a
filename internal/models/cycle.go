package models

import "time"

// Menstrual cycle phases. Informational only, never feeds the reward engine.
const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
	PhasePMS        = "pms"
	PhaseNone       = "none"
)

// MenstrualCycle is the per-user health log record.
type MenstrualCycle struct {
	UserID    string    `gorm:"primarykey" json:"user_id"`
	UpdatedAt time.Time `json:"updated_at"`

	CurrentPhase string     `gorm:"default:none" json:"current_phase"`
	CycleStart   *time.Time `json:"cycle_start"`
	CycleLength  int        `json:"cycle_length"` // days, 0 when unset
	LastPeriod   *time.Time `json:"last_period"`
}

// ValidPhase reports whether the phase is one of the closed set.
func ValidPhase(phase string) bool {
	switch phase {
	case PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal, PhasePMS, PhaseNone:
		return true
	}
	return false
}
