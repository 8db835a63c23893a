package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

// VoiceStore handles per-user voice reminder settings.
type VoiceStore struct {
	db *gorm.DB
}

func NewVoiceStore(db *gorm.DB) *VoiceStore {
	return &VoiceStore{db: db}
}

// Get returns the user's voice settings, falling back to the defaults
// (enabled, volume 80, female voice) before the first save.
func (s *VoiceStore) Get(userID string) (*models.VoiceSettings, error) {
	var settings models.VoiceSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.VoiceSettings{
				UserID:    userID,
				Enabled:   true,
				Volume:    80,
				VoiceType: models.VoiceFemale,
			}, nil
		}
		return nil, err
	}
	settings.VoiceType = models.NormalizeVoiceType(settings.VoiceType)
	return &settings, nil
}

// UpdateVoiceRequest is a partial-field merge for voice settings.
type UpdateVoiceRequest struct {
	Enabled   *bool
	Volume    *int
	VoiceType *string
}

func (s *VoiceStore) Update(userID string, req UpdateVoiceRequest) (*models.VoiceSettings, error) {
	settings, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.Enabled != nil {
		settings.Enabled = *req.Enabled
	}
	if req.Volume != nil {
		if *req.Volume < 0 || *req.Volume > 100 {
			return nil, fmt.Errorf("volume must be between 0 and 100")
		}
		settings.Volume = *req.Volume
	}
	if req.VoiceType != nil {
		// Unknown voice types fall back to female, matching the settings UI.
		settings.VoiceType = models.NormalizeVoiceType(*req.VoiceType)
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
