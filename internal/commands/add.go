package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/parser"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [mission title]",
	Short: "Add a new mission",
	Long: `Add a new mission with optional metadata.

Modes:
  Interactive: missao add -i (or just 'missao add' with no arguments)
  Quick: missao add "Mission title" (with optional flags)

Examples:
  missao add "Tidy the kitchen" --category home --points 20 --due today
  missao add "Homework" --points 30 --child <child-id> --due tomorrow
  missao add "Morning run" --category health --recur daily --start 07:00 --remind`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		interactive, _ := cmd.Flags().GetBool("interactive")
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			runInteractiveAdd(cmd, args, user.ID)
			return
		}

		runDirectAdd(cmd, args, user.ID)
	},
}

// runInteractiveAdd starts the wizard, pre-filled from args and flags.
func runInteractiveAdd(cmd *cobra.Command, args []string, userID string) {
	prefilled := make(map[string]string)

	if len(args) > 0 {
		prefilled["title"] = strings.Join(args, " ")
	}
	if description, _ := cmd.Flags().GetString("description"); description != "" {
		prefilled["description"] = description
	}
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		prefilled["category"] = category
	}
	if points, _ := cmd.Flags().GetInt("points"); points > 0 {
		prefilled["points"] = fmt.Sprintf("%d", points)
	}
	if due, _ := cmd.Flags().GetString("due"); due != "" {
		prefilled["due_date"] = due
	}
	if start, _ := cmd.Flags().GetString("start"); start != "" {
		prefilled["start_time"] = start
	}
	if recurrence, _ := cmd.Flags().GetString("recur"); recurrence != "" {
		prefilled["recurrence"] = recurrence
	}

	if err := tui.RunAddMissionTUI(taskStore(), userID, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runDirectAdd creates the mission from flags without the TUI.
func runDirectAdd(cmd *cobra.Command, args []string, userID string) {
	title := strings.Join(args, " ")
	description, _ := cmd.Flags().GetString("description")
	category, _ := cmd.Flags().GetString("category")
	points, _ := cmd.Flags().GetInt("points")
	startTime, _ := cmd.Flags().GetString("start")
	endTime, _ := cmd.Flags().GetString("end")
	recurrence, _ := cmd.Flags().GetString("recur")
	reminder, _ := cmd.Flags().GetBool("remind")
	soundAlert, _ := cmd.Flags().GetString("sound")
	childIDs, _ := cmd.Flags().GetStringSlice("child")
	pomodoros, _ := cmd.Flags().GetInt("pomodoros")

	var dueDate *string
	if raw, _ := cmd.Flags().GetString("due"); raw != "" {
		dueDate = &raw
	}

	req := db.CreateTaskRequest{
		UserID:           userID,
		Title:            title,
		Description:      description,
		Category:         category,
		Points:           points,
		StartTime:        startTime,
		EndTime:          endTime,
		Recurrence:       recurrence,
		Reminder:         reminder,
		SoundAlert:       soundAlert,
		ChildIDs:         childIDs,
		PomodoroSessions: pomodoros,
	}

	if dueDate != nil {
		parsed, err := parser.ParseDueDate(*dueDate)
		if err != nil {
			fmt.Printf("Error parsing due date: %v\n", err)
			return
		}
		req.DueDate = parsed
	}

	task, err := taskStore().Create(req)
	if err != nil {
		fmt.Printf("Error creating mission: %v\n", err)
		return
	}

	fmt.Printf("✅ Created mission: %s (%d points, %s)\n", task.Title, task.Points, task.Category)
	if task.DueDate != nil {
		fmt.Printf("  %s\n", parser.FormatDueDate(task.DueDate))
	}
	if task.Recurrence != "none" {
		fmt.Printf("  Repeats: %s\n", task.Recurrence)
	}
	if task.ChildAssigned {
		names := make([]string, 0, len(task.Assignees))
		for _, child := range task.Assignees {
			names = append(names, child.Name)
		}
		fmt.Printf("  Assigned to: %s\n", strings.Join(names, ", "))
	}
	if task.Reminder && task.StartTime != "" {
		fmt.Printf("  Reminder 15 minutes before %s\n", task.StartTime)
	}
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("description", "d", "", "Mission description")
	addCmd.Flags().StringP("category", "c", "", "Category: work, home, children, health")
	addCmd.Flags().IntP("points", "p", 10, "Point value (1-100)")
	addCmd.Flags().String("due", "", "Due date: dd/mm/yyyy, today, tomorrow, X days, X weeks")
	addCmd.Flags().String("start", "", "Start time (HH:MM)")
	addCmd.Flags().String("end", "", "End time (HH:MM)")
	addCmd.Flags().String("recur", "", "Recurrence: none, daily, weekly, monthly")
	addCmd.Flags().Bool("remind", false, "Remind 15 minutes before the start time")
	addCmd.Flags().String("sound", "", "Sound alert for the reminder")
	addCmd.Flags().StringSlice("child", []string{}, "Assign to child id (repeatable)")
	addCmd.Flags().Int("pomodoros", 0, "Focus session target")
}
