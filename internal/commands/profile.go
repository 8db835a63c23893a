package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/rewards"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your reward state and medal progress",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		req := db.UpdateProfileRequest{}
		changed := false
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			req.Name = &name
			changed = true
		}
		if cmd.Flags().Changed("age") {
			age, _ := cmd.Flags().GetInt("age")
			req.Age = &age
			changed = true
		}
		if cmd.Flags().Changed("gender") {
			gender, _ := cmd.Flags().GetString("gender")
			req.Gender = &gender
			changed = true
		}
		if changed {
			if _, err := userStore().UpdateProfile(user.ID, req); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			user, err = requireUser()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}

		tasks, err := taskStore().ListByUser(user.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		completedCount := 0
		for _, task := range tasks {
			if task.Completed {
				completedCount++
			}
		}

		fmt.Printf("👤 %s <%s>\n", user.Name, user.Email)
		fmt.Printf("⭐ %d points, level %d\n", user.Points, user.Level)
		fmt.Printf("🏅 Medals: %d gold, %d silver, %d bronze\n", user.GoldMedals, user.SilverMedals, user.BronzeMedals)
		fmt.Println()

		fmt.Printf("Progress (%d missions completed):\n", completedCount)
		for _, medal := range []string{models.MedalBronze, models.MedalSilver, models.MedalGold} {
			requirement := rewards.MedalRequirement(medal)
			if completedCount >= requirement {
				fmt.Printf("  %-6s %d/%d ✔\n", medal, completedCount, requirement)
			} else {
				fmt.Printf("  %-6s %d/%d (%d to go)\n", medal, completedCount, requirement, requirement-completedCount)
			}
		}
	},
}

func init() {
	profileCmd.Flags().String("name", "", "Update your name")
	profileCmd.Flags().Int("age", 0, "Update your age")
	profileCmd.Flags().String("gender", "", "Update your gender: male, female, other")
}
