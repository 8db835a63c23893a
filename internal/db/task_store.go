package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/parser"
)

// TaskStore handles the task collection for a user.
type TaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

// CreateTaskRequest holds the data needed to create a new task.
type CreateTaskRequest struct {
	UserID           string
	Title            string
	Description      string
	Category         string
	Points           int
	DueDate          *time.Time
	StartTime        string
	EndTime          string
	Recurrence       string
	Reminder         bool
	SoundAlert       string
	ChildIDs         []string
	PomodoroSessions int
}

// Create validates the request and stores a new task. Assignment to children
// is normalized: ChildAssigned is derived from the assignee set, never set
// independently.
func (s *TaskStore) Create(req CreateTaskRequest) (*models.Task, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	category := req.Category
	if category == "" {
		category = models.CategoryWork
	}
	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	if req.Points < 1 || req.Points > 100 {
		return nil, fmt.Errorf("points must be between 1 and 100")
	}

	recurrence := req.Recurrence
	if recurrence == "" {
		recurrence = models.RecurrenceNone
	}
	if !models.ValidRecurrence(recurrence) {
		return nil, fmt.Errorf("unknown recurrence %q", recurrence)
	}

	if err := validateClock(req.StartTime); err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	if err := validateClock(req.EndTime); err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	assignees, err := s.resolveChildren(req.UserID, req.ChildIDs)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		Title:            req.Title,
		Description:      req.Description,
		Category:         category,
		Points:           req.Points,
		DueDate:          req.DueDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Recurrence:       recurrence,
		Reminder:         req.Reminder,
		SoundAlert:       req.SoundAlert,
		ChildAssigned:    len(assignees) > 0,
		PomodoroSessions: req.PomodoroSessions,
		Assignees:        assignees,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTaskRequest is a partial-field merge: nil pointers leave the stored
// value untouched. Completion is not updatable here, it only moves through
// the reward ledger.
type UpdateTaskRequest struct {
	Title            *string
	Description      *string
	Category         *string
	Points           *int
	DueDate          *time.Time
	ClearDueDate     bool
	StartTime        *string
	EndTime          *string
	Recurrence       *string
	Reminder         *bool
	SoundAlert       *string
	ChildIDs         *[]string
	PomodoroSessions *int
}

// Update applies a partial merge to the stored task.
func (s *TaskStore) Update(userID, taskID string, req UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("title cannot be empty")
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		if !models.ValidCategory(*req.Category) {
			return nil, fmt.Errorf("unknown category %q", *req.Category)
		}
		updates["category"] = *req.Category
	}
	if req.Points != nil {
		if *req.Points < 1 || *req.Points > 100 {
			return nil, fmt.Errorf("points must be between 1 and 100")
		}
		updates["points"] = *req.Points
	}
	if req.ClearDueDate {
		updates["due_date"] = nil
	} else if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.StartTime != nil {
		if err := validateClock(*req.StartTime); err != nil {
			return nil, fmt.Errorf("start time: %w", err)
		}
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		if err := validateClock(*req.EndTime); err != nil {
			return nil, fmt.Errorf("end time: %w", err)
		}
		updates["end_time"] = *req.EndTime
	}
	if req.Recurrence != nil {
		recurrence := *req.Recurrence
		if recurrence == "" {
			recurrence = models.RecurrenceNone
		}
		if !models.ValidRecurrence(recurrence) {
			return nil, fmt.Errorf("unknown recurrence %q", recurrence)
		}
		updates["recurrence"] = recurrence
	}
	if req.Reminder != nil {
		updates["reminder"] = *req.Reminder
	}
	if req.SoundAlert != nil {
		updates["sound_alert"] = *req.SoundAlert
	}
	if req.PomodoroSessions != nil {
		updates["pomodoro_sessions"] = *req.PomodoroSessions
	}

	var assignees []models.Child
	if req.ChildIDs != nil {
		assignees, err = s.resolveChildren(userID, *req.ChildIDs)
		if err != nil {
			return nil, err
		}
		updates["child_assigned"] = len(assignees) > 0
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(task).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.ChildIDs != nil {
			if err := tx.Model(task).Association("Assignees").Replace(assignees); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(userID, taskID)
}

// Delete removes a task and its assignee links. Hard delete, no tombstone.
func (s *TaskStore) Delete(userID, taskID string) error {
	task, err := s.GetByID(userID, taskID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskAssignee{}).Error; err != nil {
			return err
		}
		return tx.Delete(task).Error
	})
}

// GetByID retrieves a task with its assignees.
func (s *TaskStore) GetByID(userID, taskID string) (*models.Task, error) {
	var task models.Task
	err := s.db.Preload("Assignees").Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task %s not found", taskID)
		}
		return nil, err
	}
	return &task, nil
}

// ListByUser returns all tasks for a user in creation order.
func (s *TaskStore) ListByUser(userID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Preload("Assignees").Where("user_id = ?", userID).Order("created_at ASC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// SetCompleted flips the completion flag to true. The transition is
// monotonic: the flag is never reset.
func (s *TaskStore) SetCompleted(userID, taskID string) error {
	return s.db.Model(&models.Task{}).
		Where("user_id = ? AND id = ?", userID, taskID).
		Update("completed", true).Error
}

// resolveChildren loads the given child ids and checks they belong to the
// user. Duplicate ids collapse into the set.
func (s *TaskStore) resolveChildren(userID string, childIDs []string) ([]models.Child, error) {
	seen := make(map[string]struct{})
	var assignees []models.Child

	for _, id := range childIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		var child models.Child
		err := s.db.Where("user_id = ? AND id = ?", userID, id).First(&child).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("child %s not found", id)
			}
			return nil, err
		}
		assignees = append(assignees, child)
	}

	return assignees, nil
}

func validateClock(value string) error {
	if value == "" {
		return nil
	}
	_, _, err := parser.ParseClock(value)
	return err
}
