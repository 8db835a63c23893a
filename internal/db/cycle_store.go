package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

// CycleStore handles the per-user menstrual cycle record. The record is
// informational only and never feeds the reward ledger.
type CycleStore struct {
	db *gorm.DB
}

func NewCycleStore(db *gorm.DB) *CycleStore {
	return &CycleStore{db: db}
}

// Get returns the user's cycle record, defaulting to phase "none" when
// nothing has been logged yet.
func (s *CycleStore) Get(userID string) (*models.MenstrualCycle, error) {
	var cycle models.MenstrualCycle
	err := s.db.Where("user_id = ?", userID).First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.MenstrualCycle{UserID: userID, CurrentPhase: models.PhaseNone}, nil
		}
		return nil, err
	}
	return &cycle, nil
}

// UpdateCycleRequest is a partial-field merge for the cycle record.
type UpdateCycleRequest struct {
	CurrentPhase *string
	CycleStart   *time.Time
	CycleLength  *int
	LastPeriod   *time.Time
}

// Update validates and merges the given fields, creating the record on first
// write.
func (s *CycleStore) Update(userID string, req UpdateCycleRequest) (*models.MenstrualCycle, error) {
	cycle, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.CurrentPhase != nil {
		if !models.ValidPhase(*req.CurrentPhase) {
			return nil, fmt.Errorf("unknown cycle phase %q", *req.CurrentPhase)
		}
		cycle.CurrentPhase = *req.CurrentPhase
	}
	if req.CycleStart != nil {
		cycle.CycleStart = req.CycleStart
	}
	if req.CycleLength != nil {
		if *req.CycleLength < 20 || *req.CycleLength > 45 {
			return nil, fmt.Errorf("cycle length must be between 20 and 45 days")
		}
		cycle.CycleLength = *req.CycleLength
	}
	if req.LastPeriod != nil {
		cycle.LastPeriod = req.LastPeriod
	}

	if err := s.db.Save(cycle).Error; err != nil {
		return nil, err
	}
	return cycle, nil
}
