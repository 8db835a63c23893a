package schedule

import (
	"time"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/parser"
)

// Reminder timing policy. The window is one-sided: a task that already
// started is never announced, so a missed tick cannot produce stale alerts.
// The alert band keeps the 60-second watcher tick from re-announcing a task
// on every pass once it enters the open window.
const (
	ReminderWindow = 15 * time.Minute
	AlertBand      = 2 * time.Minute
	TickInterval   = 60 * time.Second
)

// ScheduledStart combines a task's due-date calendar day with its HH:MM
// start time, seconds zeroed. ok is false when the task has no due date or
// no parseable start time.
func ScheduledStart(task models.Task) (start time.Time, ok bool) {
	if task.DueDate == nil || task.StartTime == "" {
		return time.Time{}, false
	}
	hour, minute, err := parser.ParseClock(task.StartTime)
	if err != nil {
		return time.Time{}, false
	}
	day := *task.DueDate
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), true
}

// UpcomingReminders returns the tasks whose start lies strictly inside the
// next ReminderWindow: not completed, reminder enabled, with a due date and
// start time. Order is the stable input order. This is the open-window view
// used for the "upcoming" listing.
func UpcomingReminders(tasks []models.Task, now time.Time) []models.Task {
	return filterByWindow(tasks, now, 0)
}

// DueForAlert returns the tasks inside the narrow acceptance band near the
// window edge: remaining time above ReminderWindow-AlertBand and below
// ReminderWindow. The periodic watcher uses this one-shot band so the same
// task cannot fire on consecutive ticks.
func DueForAlert(tasks []models.Task, now time.Time) []models.Task {
	return filterByWindow(tasks, now, ReminderWindow-AlertBand)
}

func filterByWindow(tasks []models.Task, now time.Time, lowerBound time.Duration) []models.Task {
	var due []models.Task
	for _, task := range tasks {
		if task.Completed || !task.Reminder {
			continue
		}
		start, ok := ScheduledStart(task)
		if !ok {
			continue
		}
		remaining := start.Sub(now)
		if remaining > lowerBound && remaining < ReminderWindow {
			due = append(due, task)
		}
	}
	return due
}
