package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/parser"
)

// Step represents the current step in the add-mission wizard
type Step int

const (
	StepTitle Step = iota
	StepDescription
	StepCategory
	StepPoints
	StepDueDate
	StepStartTime
	StepRecurrence
	StepReminder
	StepComplete
)

var stepLabels = []string{
	"Title",
	"Description",
	"Category (work/home/children/health)",
	"Points (1-100)",
	"Due date (dd/mm/yyyy, today, tomorrow, X days)",
	"Start time (HH:MM, optional)",
	"Recurrence (none/daily/weekly/monthly)",
	"Reminder (y/n)",
}

// AddMissionModel is the TUI model for the interactive add wizard.
type AddMissionModel struct {
	store  *db.TaskStore
	userID string

	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	// State
	err           error
	completed     bool
	cancelled     bool
	validationErr string
	createdTitle  string
}

// NewAddMissionModel creates a new add wizard, optionally pre-filled from
// flags.
func NewAddMissionModel(store *db.TaskStore, userID string, prefilled map[string]string) AddMissionModel {
	inputs := make([]textinput.Model, len(stepLabels))
	placeholders := []string{
		"What needs to be done?",
		"Optional details",
		"work",
		"10",
		"today",
		"",
		"none",
		"n",
	}

	for i := range inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i] = input
	}

	for key, value := range prefilled {
		switch key {
		case "title":
			inputs[StepTitle].SetValue(value)
		case "description":
			inputs[StepDescription].SetValue(value)
		case "category":
			inputs[StepCategory].SetValue(value)
		case "points":
			inputs[StepPoints].SetValue(value)
		case "due_date":
			inputs[StepDueDate].SetValue(value)
		case "start_time":
			inputs[StepStartTime].SetValue(value)
		case "recurrence":
			inputs[StepRecurrence].SetValue(value)
		}
	}

	inputs[StepTitle].Focus()

	return AddMissionModel{
		store:  store,
		userID: userID,
		inputs: inputs,
	}
}

func (m AddMissionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AddMissionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			m.validationErr = ""
			if err := m.validateStep(m.currentStep); err != nil {
				m.validationErr = err.Error()
				return m, nil
			}

			if m.currentStep == StepReminder {
				if err := m.save(); err != nil {
					m.err = err
					return m, tea.Quit
				}
				m.completed = true
				m.currentStep = StepComplete
				return m, tea.Quit
			}

			m.inputs[m.currentStep].Blur()
			m.currentStep++
			m.inputs[m.currentStep].Focus()
			return m, nil

		case "shift+tab":
			if m.currentStep > StepTitle && m.currentStep < StepComplete {
				m.inputs[m.currentStep].Blur()
				m.currentStep--
				m.inputs[m.currentStep].Focus()
			}
			return m, nil
		}
	}

	if m.currentStep < StepComplete {
		var cmd tea.Cmd
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AddMissionModel) validateStep(step Step) error {
	value := strings.TrimSpace(m.inputs[step].Value())

	switch step {
	case StepTitle:
		if value == "" {
			return fmt.Errorf("title is required")
		}
	case StepPoints:
		if value == "" {
			return nil
		}
		points, err := strconv.Atoi(value)
		if err != nil || points < 1 || points > 100 {
			return fmt.Errorf("points must be between 1 and 100")
		}
	case StepDueDate:
		if value == "" {
			return nil
		}
		if _, err := parser.ParseDueDate(value); err != nil {
			return err
		}
	case StepStartTime:
		if value == "" {
			return nil
		}
		if _, _, err := parser.ParseClock(value); err != nil {
			return err
		}
	}
	return nil
}

func (m *AddMissionModel) save() error {
	points := 10
	if raw := strings.TrimSpace(m.inputs[StepPoints].Value()); raw != "" {
		points, _ = strconv.Atoi(raw)
	}

	dueDate, err := parser.ParseDueDate(strings.TrimSpace(m.inputs[StepDueDate].Value()))
	if err != nil {
		return err
	}

	reminder := false
	switch strings.ToLower(strings.TrimSpace(m.inputs[StepReminder].Value())) {
	case "y", "yes", "s", "sim":
		reminder = true
	}

	task, err := m.store.Create(db.CreateTaskRequest{
		UserID:      m.userID,
		Title:       strings.TrimSpace(m.inputs[StepTitle].Value()),
		Description: strings.TrimSpace(m.inputs[StepDescription].Value()),
		Category:    strings.TrimSpace(m.inputs[StepCategory].Value()),
		Points:      points,
		DueDate:     dueDate,
		StartTime:   strings.TrimSpace(m.inputs[StepStartTime].Value()),
		Recurrence:  strings.TrimSpace(m.inputs[StepRecurrence].Value()),
		Reminder:    reminder,
	})
	if err != nil {
		return err
	}

	m.createdTitle = task.Title
	return nil
}

func (m AddMissionModel) View() string {
	if m.completed || m.cancelled {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))

	activeLabelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)

	errStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder
	b.WriteString(headerStyle.Render("✨ New mission"))
	b.WriteString("\n\n")

	for i := range stepLabels {
		label := stepLabels[i]
		if Step(i) == m.currentStep {
			b.WriteString(activeLabelStyle.Render("› " + label))
			b.WriteString("\n")
			b.WriteString(m.inputs[i].View())
		} else {
			value := m.inputs[i].Value()
			if value == "" {
				value = "-"
			}
			b.WriteString(labelStyle.Render(fmt.Sprintf("  %s: %s", label, value)))
		}
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter next · shift+tab back · esc cancel"))

	return b.String()
}
