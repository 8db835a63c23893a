package db

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func newTestUser(t *testing.T, gdb *gorm.DB) *models.User {
	t.Helper()
	user, err := NewUserStore(gdb).Register("Ana", "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	return user
}

func newTestChild(t *testing.T, gdb *gorm.DB, userID, name string) *models.Child {
	t.Helper()
	child, err := NewChildStore(gdb).Create(CreateChildRequest{
		UserID:      userID,
		Name:        name,
		Age:         8,
		AvatarColor: "blue",
	})
	if err != nil {
		t.Fatalf("create child %s: %v", name, err)
	}
	return child
}

func TestCreateTaskValidatesFields(t *testing.T) {
	gdb := newTestDB(t)
	user := newTestUser(t, gdb)
	store := NewTaskStore(gdb)

	tests := []struct {
		name string
		req  CreateTaskRequest
	}{
		{"missing title", CreateTaskRequest{UserID: user.ID, Points: 10}},
		{"unknown category", CreateTaskRequest{UserID: user.ID, Title: "x", Points: 10, Category: "hobby"}},
		{"points too low", CreateTaskRequest{UserID: user.ID, Title: "x", Points: 0}},
		{"points too high", CreateTaskRequest{UserID: user.ID, Title: "x", Points: 101}},
		{"unknown recurrence", CreateTaskRequest{UserID: user.ID, Title: "x", Points: 10, Recurrence: "yearly"}},
		{"bad start time", CreateTaskRequest{UserID: user.ID, Title: "x", Points: 10, StartTime: "25:00"}},
		{"unknown child", CreateTaskRequest{UserID: user.ID, Title: "x", Points: 10, ChildIDs: []string{"nope"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.Create(tt.req); err == nil {
				t.Fatalf("expected a validation error")
			}
		})
	}
}

func TestCreateTaskDefaultsAndAssignment(t *testing.T) {
	gdb := newTestDB(t)
	user := newTestUser(t, gdb)
	child := newTestChild(t, gdb, user.ID, "Bia")
	store := NewTaskStore(gdb)

	task, err := store.Create(CreateTaskRequest{
		UserID:   user.ID,
		Title:    "Homework",
		Points:   20,
		ChildIDs: []string{child.ID, child.ID, ""}, // duplicates and blanks collapse
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if task.Category != models.CategoryWork {
		t.Fatalf("expected default category work, got %q", task.Category)
	}
	if task.Recurrence != models.RecurrenceNone {
		t.Fatalf("expected default recurrence none, got %q", task.Recurrence)
	}
	if !task.ChildAssigned {
		t.Fatalf("expected ChildAssigned to be derived from the assignee set")
	}
	if ids := task.AssigneeIDs(); len(ids) != 1 || ids[0] != child.ID {
		t.Fatalf("expected assignee set {%s}, got %v", child.ID, ids)
	}
	if task.Completed {
		t.Fatalf("new tasks start uncompleted")
	}
}

func TestUpdateTaskPartialMerge(t *testing.T) {
	gdb := newTestDB(t)
	user := newTestUser(t, gdb)
	store := NewTaskStore(gdb)

	due := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.Local)
	task, err := store.Create(CreateTaskRequest{
		UserID:      user.ID,
		Title:       "Walk",
		Description: "Around the block",
		Category:    models.CategoryHealth,
		Points:      15,
		DueDate:     &due,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	newTitle := "Long walk"
	newPoints := 25
	updated, err := store.Update(user.ID, task.ID, UpdateTaskRequest{
		Title:  &newTitle,
		Points: &newPoints,
	})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}

	if updated.Title != "Long walk" || updated.Points != 25 {
		t.Fatalf("expected changed fields to merge, got %q/%d", updated.Title, updated.Points)
	}
	if updated.Description != "Around the block" || updated.Category != models.CategoryHealth {
		t.Fatalf("untouched fields must survive a partial merge")
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Fatalf("due date must survive a partial merge")
	}

	bad := "hobby"
	if _, err := store.Update(user.ID, task.ID, UpdateTaskRequest{Category: &bad}); err == nil {
		t.Fatalf("expected unknown category to be rejected")
	}

	if _, err := store.Update(user.ID, task.ID, UpdateTaskRequest{ClearDueDate: true}); err != nil {
		t.Fatalf("clear due date: %v", err)
	}
	reloaded, err := store.GetByID(user.ID, task.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.DueDate != nil {
		t.Fatalf("expected due date to be cleared")
	}
}

func TestUpdateTaskReplacesAssignees(t *testing.T) {
	gdb := newTestDB(t)
	user := newTestUser(t, gdb)
	first := newTestChild(t, gdb, user.ID, "Bia")
	second := newTestChild(t, gdb, user.ID, "Caio")
	store := NewTaskStore(gdb)

	task, err := store.Create(CreateTaskRequest{
		UserID:   user.ID,
		Title:    "Dishes",
		Points:   10,
		ChildIDs: []string{first.ID},
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	replacement := []string{second.ID}
	updated, err := store.Update(user.ID, task.ID, UpdateTaskRequest{ChildIDs: &replacement})
	if err != nil {
		t.Fatalf("update assignees: %v", err)
	}
	if ids := updated.AssigneeIDs(); len(ids) != 1 || ids[0] != second.ID {
		t.Fatalf("expected assignee set {%s}, got %v", second.ID, ids)
	}

	empty := []string{}
	updated, err = store.Update(user.ID, task.ID, UpdateTaskRequest{ChildIDs: &empty})
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if updated.ChildAssigned || len(updated.Assignees) != 0 {
		t.Fatalf("expected ChildAssigned cleared with an empty set")
	}
}

func TestDeleteTaskIsHard(t *testing.T) {
	gdb := newTestDB(t)
	user := newTestUser(t, gdb)
	store := NewTaskStore(gdb)

	task, err := store.Create(CreateTaskRequest{UserID: user.ID, Title: "Gone", Points: 5})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := store.Delete(user.ID, task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if _, err := store.GetByID(user.ID, task.ID); err == nil {
		t.Fatalf("expected the task to be gone")
	}

	tasks, err := store.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
}
