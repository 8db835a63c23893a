package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/tui"
)

var focusCmd = &cobra.Command{
	Use:   "focus [mission-id]",
	Short: "Run a pomodoro focus session for a mission",
	Long: `Run a focus timer for a mission: 25 minutes of work, 5 minutes of break,
repeated until the mission's session target is reached.`,
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

		if err := tui.RunFocusTUI(task); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}
