package schedule

import (
	"time"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

// Normalize strips the time-of-day from a timestamp. All recurrence and
// daily-list decisions compare calendar days in the timestamp's location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ActiveOn reports whether a task should appear on the given date. A task
// without a due date never appears in date-scoped views. Recurring tasks
// project their single stored row onto every matching date on or after the
// anchor; occurrences are never materialized.
//
// Pure function: the daily task list and the weekly report both call it and
// must see identical results for identical inputs.
func ActiveOn(task models.Task, date time.Time) bool {
	if task.DueDate == nil {
		return false
	}

	target := Normalize(date)
	anchor := Normalize(*task.DueDate)

	if task.Recurrence == "" || task.Recurrence == models.RecurrenceNone {
		return anchor.Equal(target)
	}

	daysDiff := daysBetween(anchor, target)
	if daysDiff < 0 {
		return false // never before the anchor
	}

	switch task.Recurrence {
	case models.RecurrenceDaily:
		return true
	case models.RecurrenceWeekly:
		return daysDiff%7 == 0
	case models.RecurrenceMonthly:
		// Same day-of-month as the anchor. An anchor on the 31st simply
		// never fires in shorter months; it does not roll over.
		return target.Day() == anchor.Day()
	default:
		return anchor.Equal(target)
	}
}

// daysBetween counts whole calendar days from a to b. Both dates are
// re-anchored in UTC first: a wall-clock Sub would come up an hour short (or
// long) across a DST transition and truncate to the wrong day count.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
