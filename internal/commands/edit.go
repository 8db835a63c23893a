package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/parser"
)

var editCmd = &cobra.Command{
	Use:   "edit [mission-id]",
	Short: "Edit a mission",
	Long:  `Edit a mission. Only the flags you pass change; everything else stays.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		req := db.UpdateTaskRequest{}

		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			req.Title = &title
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			req.Description = &description
		}
		if cmd.Flags().Changed("category") {
			category, _ := cmd.Flags().GetString("category")
			req.Category = &category
		}
		if cmd.Flags().Changed("points") {
			points, _ := cmd.Flags().GetInt("points")
			req.Points = &points
		}
		if cmd.Flags().Changed("due") {
			raw, _ := cmd.Flags().GetString("due")
			if raw == "" {
				req.ClearDueDate = true
			} else {
				parsed, err := parser.ParseDueDate(raw)
				if err != nil {
					fmt.Printf("Error parsing due date: %v\n", err)
					return
				}
				req.DueDate = parsed
			}
		}
		if cmd.Flags().Changed("start") {
			start, _ := cmd.Flags().GetString("start")
			req.StartTime = &start
		}
		if cmd.Flags().Changed("end") {
			end, _ := cmd.Flags().GetString("end")
			req.EndTime = &end
		}
		if cmd.Flags().Changed("recur") {
			recurrence, _ := cmd.Flags().GetString("recur")
			req.Recurrence = &recurrence
		}
		if cmd.Flags().Changed("remind") {
			remind, _ := cmd.Flags().GetBool("remind")
			req.Reminder = &remind
		}
		if cmd.Flags().Changed("sound") {
			sound, _ := cmd.Flags().GetString("sound")
			req.SoundAlert = &sound
		}
		if cmd.Flags().Changed("child") {
			childIDs, _ := cmd.Flags().GetStringSlice("child")
			req.ChildIDs = &childIDs
		}
		if cmd.Flags().Changed("pomodoros") {
			pomodoros, _ := cmd.Flags().GetInt("pomodoros")
			req.PomodoroSessions = &pomodoros
		}

		task, err := taskStore().Update(user.ID, args[0], req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated mission: %s\n", task.Title)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm [mission-id]",
	Short: "Delete a mission",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		task, err := taskStore().GetByID(user.ID, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := taskStore().Delete(user.ID, task.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted mission: %s\n", task.Title)
	},
}

func init() {
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().StringP("description", "d", "", "New description")
	editCmd.Flags().StringP("category", "c", "", "New category")
	editCmd.Flags().IntP("points", "p", 0, "New point value (1-100)")
	editCmd.Flags().String("due", "", "New due date (empty to clear)")
	editCmd.Flags().String("start", "", "New start time (HH:MM)")
	editCmd.Flags().String("end", "", "New end time (HH:MM)")
	editCmd.Flags().String("recur", "", "New recurrence")
	editCmd.Flags().Bool("remind", false, "Toggle the reminder")
	editCmd.Flags().String("sound", "", "New sound alert")
	editCmd.Flags().StringSlice("child", []string{}, "Replace assignees (empty to unassign)")
	editCmd.Flags().Int("pomodoros", 0, "New focus session target")
}
