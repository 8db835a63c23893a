package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

// ChildStore handles the child profile collection for a user.
type ChildStore struct {
	db *gorm.DB
}

func NewChildStore(db *gorm.DB) *ChildStore {
	return &ChildStore{db: db}
}

// CreateChildRequest holds the data needed to create a child profile.
type CreateChildRequest struct {
	UserID      string
	Name        string
	Age         int
	AvatarColor string
}

func (s *ChildStore) Create(req CreateChildRequest) (*models.Child, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Age < 1 || req.Age > 18 {
		return nil, fmt.Errorf("age must be between 1 and 18")
	}

	child := models.Child{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Name:        req.Name,
		Age:         req.Age,
		AvatarColor: req.AvatarColor,
	}

	if err := s.db.Create(&child).Error; err != nil {
		return nil, err
	}

	return &child, nil
}

// UpdateChildRequest is a partial-field merge; nil pointers are untouched.
// Points are not updatable here, they only move through the reward ledger.
type UpdateChildRequest struct {
	Name        *string
	Age         *int
	AvatarColor *string
}

func (s *ChildStore) Update(userID, childID string, req UpdateChildRequest) (*models.Child, error) {
	child, err := s.GetByID(userID, childID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		updates["name"] = *req.Name
	}
	if req.Age != nil {
		if *req.Age < 1 || *req.Age > 18 {
			return nil, fmt.Errorf("age must be between 1 and 18")
		}
		updates["age"] = *req.Age
	}
	if req.AvatarColor != nil {
		updates["avatar_color"] = *req.AvatarColor
	}

	if len(updates) > 0 {
		if err := s.db.Model(child).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return child, nil
}

// Delete removes a child and, in the same transaction, strips it from the
// assignee set of every task that referenced it. Tasks themselves survive:
// only the link is removed, and ChildAssigned is cleared when the set
// empties. Children assigned alongside the deleted one keep their links.
func (s *ChildStore) Delete(userID, childID string) error {
	child, err := s.GetByID(userID, childID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var links []models.TaskAssignee
		if err := tx.Where("child_id = ?", child.ID).Find(&links).Error; err != nil {
			return err
		}

		if err := tx.Where("child_id = ?", child.ID).Delete(&models.TaskAssignee{}).Error; err != nil {
			return err
		}

		for _, link := range links {
			var remaining int64
			if err := tx.Model(&models.TaskAssignee{}).Where("task_id = ?", link.TaskID).Count(&remaining).Error; err != nil {
				return err
			}
			if remaining == 0 {
				if err := tx.Model(&models.Task{}).Where("id = ?", link.TaskID).
					Update("child_assigned", false).Error; err != nil {
					return err
				}
			}
		}

		return tx.Delete(child).Error
	})
}

func (s *ChildStore) GetByID(userID, childID string) (*models.Child, error) {
	var child models.Child
	err := s.db.Where("user_id = ? AND id = ?", userID, childID).First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("child %s not found", childID)
		}
		return nil, err
	}
	return &child, nil
}

func (s *ChildStore) ListByUser(userID string) ([]models.Child, error) {
	var children []models.Child
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&children).Error
	if err != nil {
		return nil, err
	}
	return children, nil
}

// CreditPoints adds the given amount to a child's total. Amount is never
// negative: totals only grow.
func (s *ChildStore) CreditPoints(userID, childID string, points int) error {
	if points < 0 {
		return fmt.Errorf("points credit cannot be negative")
	}
	child, err := s.GetByID(userID, childID)
	if err != nil {
		return err
	}
	return s.db.Model(child).Update("points", child.Points+points).Error
}
