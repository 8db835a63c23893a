package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

// RunAddMissionTUI starts the interactive add-mission wizard.
func RunAddMissionTUI(store *db.TaskStore, userID string, prefilled map[string]string) error {
	model := NewAddMissionModel(store, userID, prefilled)

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddMissionModel); ok {
		if m.cancelled {
			fmt.Println("❌ Mission creation cancelled.")
		} else if m.completed {
			fmt.Printf("✅ New mission \"%s\" added\n", m.createdTitle)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunFocusTUI starts the pomodoro focus timer for a task.
func RunFocusTUI(task *models.Task) error {
	model := NewFocusModel(task)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
