package report

import (
	"time"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/schedule"
)

// dayNames labels the series by day of week, Sunday first.
var dayNames = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// DayProgress is one point of the weekly series.
type DayProgress struct {
	Day       string    `json:"day"`
	Date      time.Time `json:"date"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
}

// WeeklyProgress derives the completed/total series for the 7 calendar days
// ending at today, oldest first. Each day's task set comes from the
// recurrence resolver, so a weekly task shows up once per week and a daily
// task every day. Pure function of the given task collection.
func WeeklyProgress(tasks []models.Task, today time.Time) []DayProgress {
	series := make([]DayProgress, 0, 7)

	for i := 6; i >= 0; i-- {
		date := schedule.Normalize(today).AddDate(0, 0, -i)

		completed, total := 0, 0
		for _, task := range tasks {
			if !schedule.ActiveOn(task, date) {
				continue
			}
			total++
			if task.Completed {
				completed++
			}
		}

		series = append(series, DayProgress{
			Day:       dayNames[int(date.Weekday())],
			Date:      date,
			Completed: completed,
			Total:     total,
		})
	}

	return series
}
