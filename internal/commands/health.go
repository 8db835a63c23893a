package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/parser"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "View or update the cycle log",
	Long: `View or update the menstrual cycle log. The log is informational only and
never affects points or medals.

Examples:
  missao health
  missao health --phase luteal
  missao health --last-period 01/09/2026 --length 28`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		req := db.UpdateCycleRequest{}
		changed := false

		if cmd.Flags().Changed("phase") {
			phase, _ := cmd.Flags().GetString("phase")
			req.CurrentPhase = &phase
			changed = true
		}
		if cmd.Flags().Changed("length") {
			length, _ := cmd.Flags().GetInt("length")
			req.CycleLength = &length
			changed = true
		}
		if cmd.Flags().Changed("start") {
			raw, _ := cmd.Flags().GetString("start")
			parsed, err := parser.ParseDueDate(raw)
			if err != nil {
				fmt.Printf("Error parsing start date: %v\n", err)
				return
			}
			req.CycleStart = parsed
			changed = true
		}
		if cmd.Flags().Changed("last-period") {
			raw, _ := cmd.Flags().GetString("last-period")
			parsed, err := parser.ParseDueDate(raw)
			if err != nil {
				fmt.Printf("Error parsing last period date: %v\n", err)
				return
			}
			req.LastPeriod = parsed
			changed = true
		}

		var cycle *models.MenstrualCycle
		if changed {
			cycle, err = cycleStore().Update(user.ID, req)
		} else {
			cycle, err = cycleStore().Get(user.ID)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println("🌸 Cycle log")
		fmt.Printf("  Phase: %s\n", cycle.CurrentPhase)
		if cycle.CycleStart != nil {
			fmt.Printf("  Cycle start: %s\n", cycle.CycleStart.Format("02/01/2006"))
		}
		if cycle.CycleLength > 0 {
			fmt.Printf("  Cycle length: %d days\n", cycle.CycleLength)
		}
		if cycle.LastPeriod != nil {
			fmt.Printf("  Last period: %s\n", cycle.LastPeriod.Format("02/01/2006"))
		}
	},
}

func init() {
	healthCmd.Flags().String("phase", "", "Current phase: menstrual, follicular, ovulation, luteal, pms, none")
	healthCmd.Flags().Int("length", 0, "Cycle length in days (20-45)")
	healthCmd.Flags().String("start", "", "Cycle start date (dd/mm/yyyy)")
	healthCmd.Flags().String("last-period", "", "Last period date (dd/mm/yyyy)")
}
