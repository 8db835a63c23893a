package models

import (
	"time"
)

// Task category values. Unknown categories are rejected at the store boundary.
const (
	CategoryWork     = "work"
	CategoryHome     = "home"
	CategoryChildren = "children"
	CategoryHealth   = "health"
)

// Recurrence values. A task with RecurrenceNone (or empty) only shows on its
// exact due date.
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

// Task represents a mission: a unit of work, optionally recurring, optionally
// delegated to one or more children.
type Task struct {
	ID        string    `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Category    string `gorm:"default:work" json:"category"`
	Points      int    `gorm:"default:10" json:"points"` // 1-100

	Completed bool       `gorm:"default:false" json:"completed"` // monotonic, false -> true only
	DueDate   *time.Time `json:"due_date"`
	StartTime string     `json:"start_time"` // HH:MM, empty when unset
	EndTime   string     `json:"end_time"`   // HH:MM, empty when unset

	Recurrence string `gorm:"default:none" json:"recurrence"`
	Reminder   bool   `gorm:"default:false" json:"reminder"`
	SoundAlert string `json:"sound_alert"`

	ChildAssigned    bool `gorm:"default:false" json:"child_assigned"`
	PomodoroSessions int  `gorm:"default:0" json:"pomodoro_sessions"`

	// Relationships
	Assignees []Child `gorm:"many2many:task_assignees;" json:"assignees"`
}

// TaskAssignee is the join table linking delegated tasks to children.
type TaskAssignee struct {
	TaskID  string `gorm:"primaryKey"`
	ChildID string `gorm:"primaryKey"`
}

// AssigneeIDs returns the normalized set of assigned child ids.
func (t *Task) AssigneeIDs() []string {
	ids := make([]string, 0, len(t.Assignees))
	for _, child := range t.Assignees {
		ids = append(ids, child.ID)
	}
	return ids
}

// ValidCategory reports whether the category is one of the closed set.
func ValidCategory(category string) bool {
	switch category {
	case CategoryWork, CategoryHome, CategoryChildren, CategoryHealth:
		return true
	}
	return false
}

// ValidRecurrence reports whether the recurrence is one of the closed set.
// An empty string is accepted and treated as "none".
func ValidRecurrence(recurrence string) bool {
	switch recurrence {
	case "", RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}
