package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/parser"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/schedule"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List missions for a day",
	Long: `List the missions active on a given day. Recurring missions appear on every
day they project onto. Use --all to list every stored mission regardless of
date.`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		tasks, err := taskStore().ListByUser(user.ID)
		if err != nil {
			fmt.Printf("Error fetching missions: %v\n", err)
			return
		}

		all, _ := cmd.Flags().GetBool("all")
		day := time.Now()
		if rawDate, _ := cmd.Flags().GetString("date"); rawDate != "" {
			parsed, err := parser.ParseDueDate(rawDate)
			if err != nil {
				fmt.Printf("Error parsing date: %v\n", err)
				return
			}
			day = *parsed
		}

		var visible []models.Task
		if all {
			visible = tasks
		} else {
			for _, task := range tasks {
				if schedule.ActiveOn(task, day) {
					visible = append(visible, task)
				}
			}
		}

		if len(visible) == 0 {
			if all {
				fmt.Println("No missions found. Use 'missao add \"mission title\"' to create your first one.")
			} else {
				fmt.Printf("No missions for %s. Enjoy the free time! 🎈\n", day.Format("02/01/2006"))
			}
			return
		}

		if !all {
			fmt.Printf("Missions for %s:\n\n", day.Format("02/01/2006"))
		}

		fmt.Printf("%-36s %-3s %-30s %-9s %-4s %-6s %s\n", "ID", "", "TITLE", "CATEGORY", "PTS", "TIME", "NOTES")
		fmt.Println(strings.Repeat("-", 100))

		for _, task := range visible {
			status := "⬜"
			if task.Completed {
				status = "✅"
			}

			title := truncateTitle(task.Title)

			timeStr := task.StartTime
			if timeStr == "" {
				timeStr = "-"
			}

			var notes []string
			if task.Recurrence != "" && task.Recurrence != models.RecurrenceNone {
				notes = append(notes, "↻ "+task.Recurrence)
			}
			if task.ChildAssigned {
				names := make([]string, 0, len(task.Assignees))
				for _, child := range task.Assignees {
					names = append(names, child.Name)
				}
				notes = append(notes, "👧 "+strings.Join(names, ","))
			}
			if task.Reminder {
				notes = append(notes, "🔔")
			}

			fmt.Printf("%-36s %-3s %-30s %-9s %-4d %-6s %s\n",
				task.ID,
				status,
				title,
				task.Category,
				task.Points,
				timeStr,
				strings.Join(notes, " "))
		}
	},
}

// truncateTitle caps a title at 28 characters for the table, counting runes
// so accented text is never cut mid-character.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= 28 {
		return title
	}
	return string(runes[:25]) + "..."
}

func init() {
	listCmd.Flags().String("date", "", "Day to list (dd/mm/yyyy, today, tomorrow)")
	listCmd.Flags().BoolP("all", "a", false, "List every mission, ignoring dates")
}
