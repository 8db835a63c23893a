package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

// UserStore handles accounts, the local session and the reward state. It is
// a mock credential store: passwords are kept as-is, there is no real
// backend behind it.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates a new account and logs it in.
func (s *UserStore) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("email %s is already in use", email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
		Level:    1,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	if err := s.setSession(user.ID); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login checks the credentials and opens the local session.
func (s *UserStore) Login(email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil || user.Password != password {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := s.setSession(user.ID); err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout closes the local session. A missing session is not an error.
func (s *UserStore) Logout() error {
	return s.db.Where("1 = 1").Delete(&models.Session{}).Error
}

// CurrentUser returns the logged-in user, or nil when nobody is logged in.
func (s *UserStore) CurrentUser() (*models.User, error) {
	var session models.Session
	err := s.db.First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var user models.User
	if err := s.db.Where("id = ?", session.UserID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreditPoints adds points to the user's total and recomputes the level from
// the post-award total. Level is never stored independently of points.
func (s *UserStore) CreditPoints(userID string, points int) error {
	if points < 0 {
		return fmt.Errorf("points credit cannot be negative")
	}

	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return err
	}

	total := user.Points + points
	return s.db.Model(&user).Updates(map[string]interface{}{
		"points": total,
		"level":  LevelForPoints(total),
	}).Error
}

// CreditMedal increments the medal counter for the given tier.
func (s *UserStore) CreditMedal(userID, medal string) error {
	if !models.ValidMedal(medal) {
		return fmt.Errorf("unknown medal %q", medal)
	}

	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return err
	}

	column := map[string]string{
		models.MedalBronze: "bronze_medals",
		models.MedalSilver: "silver_medals",
		models.MedalGold:   "gold_medals",
	}[medal]

	return s.db.Model(&user).Update(column, gorm.Expr(column+" + 1")).Error
}

// UpdateProfileRequest is a partial-field merge for profile attributes.
type UpdateProfileRequest struct {
	Name   *string
	Age    *int
	Gender *string
}

func (s *UserStore) UpdateProfile(userID string, req UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Age != nil {
		if *req.Age < 1 || *req.Age > 120 {
			return nil, fmt.Errorf("age must be between 1 and 120")
		}
		updates["age"] = *req.Age
	}
	if req.Gender != nil {
		switch *req.Gender {
		case "male", "female", "other":
			updates["gender"] = *req.Gender
		default:
			return nil, fmt.Errorf("unknown gender %q", *req.Gender)
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &user, nil
}

func (s *UserStore) setSession(userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Session{UserID: userID}).Error
	})
}

// LevelForPoints derives the level from a cumulative point total: one level
// per hundred points, starting at level 1.
func LevelForPoints(points int) int {
	return points/100 + 1
}
