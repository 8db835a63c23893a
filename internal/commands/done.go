package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/rewards"
)

var doneCmd = &cobra.Command{
	Use:   "done [mission-id]",
	Short: "Complete a mission and collect the reward",
	Long: `Mark a mission as completed. Completion is final and pays out once: the
mission's points go to you (plus a medal picked by the mission's value), or
to every child it is assigned to. Completing the same mission again changes
nothing.`,
	Args: cobra.ExactArgs(1),
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
		if task.Completed {
			fmt.Printf("Mission \"%s\" is already completed.\n", task.Title)
			return
		}

		if err := ledger().Complete(user.ID, task.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Mission completed: %s\n", task.Title)

		if task.ChildAssigned {
			for _, child := range task.Assignees {
				fmt.Printf("  ⭐ %s earned %d points\n", child.Name, task.Points)
			}
			return
		}

		medal := rewards.MedalForPoints(task.Points)
		refreshed, err := userStore().CurrentUser()
		if err != nil || refreshed == nil {
			fmt.Printf("  ⭐ +%d points, %s medal\n", task.Points, medal)
			return
		}
		fmt.Printf("  ⭐ +%d points (total %d, level %d), %s medal 🏅\n",
			task.Points, refreshed.Points, refreshed.Level, medal)
	},
}
