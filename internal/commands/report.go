package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/motivation"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the weekly progress report",
	Long:  `Show completed vs total missions for the last 7 days, today last.`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		tasks, err := taskStore().ListByUser(user.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		series := report.WeeklyProgress(tasks, time.Now())

		fmt.Println("📊 Last 7 days")
		fmt.Println()
		for _, day := range series {
			bar := progressBar(day.Completed, day.Total, 20)
			fmt.Printf("%-4s %s  %s %d/%d\n", day.Day, day.Date.Format("02/01"), bar, day.Completed, day.Total)
		}

		fmt.Println()
		fmt.Printf("💬 %s\n", motivation.RandomPhrase())
	},
}

// progressBar renders a completed/total ratio as a fixed-width bar.
func progressBar(completed, total, width int) string {
	if total == 0 {
		return "[" + strings.Repeat("·", width) + "]"
	}
	filled := completed * width / total
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
}
