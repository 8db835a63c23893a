package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

// Pomodoro phase lengths.
const (
	workLength  = 25 * time.Minute
	breakLength = 5 * time.Minute
)

// FocusModel is the TUI model for the pomodoro-style focus timer. It counts
// down work and break phases until the task's session target is reached.
type FocusModel struct {
	width  int
	height int

	task     *models.Task
	progress progress.Model

	// Timer state
	onBreak     bool
	remaining   time.Duration
	phaseLength time.Duration
	session     int // 1-based
	target      int
	paused      bool
	finished    bool
	quitting    bool
}

// focusTickMsg is sent every second to advance the countdown
type focusTickMsg struct{}

// NewFocusModel creates a focus timer for the given task. Tasks without a
// session target get a single session.
func NewFocusModel(task *models.Task) FocusModel {
	target := task.PomodoroSessions
	if target < 1 {
		target = 1
	}

	bar := progress.New(progress.WithGradient(ColorAccentMain, ColorAccentBright))

	return FocusModel{
		task:        task,
		progress:    bar,
		remaining:   workLength,
		phaseLength: workLength,
		session:     1,
		target:      target,
	}
}

func (m FocusModel) Init() tea.Cmd {
	return focusTick()
}

func focusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return focusTickMsg{}
	})
}

func (m FocusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case focusTickMsg:
		if m.paused || m.finished || m.quitting {
			return m, focusTick()
		}

		m.remaining -= time.Second
		if m.remaining > 0 {
			return m, focusTick()
		}

		// Phase over: flip between work and break, count sessions.
		if m.onBreak {
			m.onBreak = false
			m.session++
			m.remaining = workLength
			m.phaseLength = workLength
		} else {
			if m.session >= m.target {
				m.finished = true
				return m, nil
			}
			m.onBreak = true
			m.remaining = breakLength
			m.phaseLength = breakLength
		}
		return m, focusTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-8, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "p", " ":
			m.paused = !m.paused
			return m, nil
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.finished {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m FocusModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(m.width)

	header := "🍅  FOCUS"
	if m.onBreak {
		header = "☕  BREAK"
	}
	if m.finished {
		header = "🎉  ALL SESSIONS DONE"
	}

	minutes := int(m.remaining.Minutes())
	seconds := int(m.remaining.Seconds()) % 60
	clock := fmt.Sprintf("%02d:%02d", minutes, seconds)
	if m.paused {
		clock += "  (paused)"
	}

	elapsed := m.phaseLength - m.remaining
	bar := m.progress.ViewAs(float64(elapsed) / float64(m.phaseLength))
	barLine := lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width).Render(bar)

	sessionInfo := fmt.Sprintf("Session %d of %d", m.session, m.target)
	help := "p pause · q quit"
	if m.finished {
		help = "enter/q close"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		"",
		titleStyle.Render(m.task.Title),
		infoStyle.Render(sessionInfo),
		"",
		titleStyle.Render(clock),
		barLine,
		"",
		infoStyle.Render(help),
	)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
