package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/rewards"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "missao",
	Short: "A gamified daily mission tracker",
	Long: `missao is a command-line mission tracker built for attention-challenged minds.
Plan recurring missions, earn points and medals, delegate missions to your
children, run focus sessions, and get reminded before anything starts.`,
}

// initDB initializes the database and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err)
	}
}

func taskStore() *db.TaskStore   { return db.NewTaskStore(db.DB) }
func childStore() *db.ChildStore { return db.NewChildStore(db.DB) }
func userStore() *db.UserStore   { return db.NewUserStore(db.DB) }
func cycleStore() *db.CycleStore { return db.NewCycleStore(db.DB) }
func voiceStore() *db.VoiceStore { return db.NewVoiceStore(db.DB) }

func ledger() *rewards.Ledger {
	return rewards.NewLedger(db.DB)
}

// requireUser returns the logged-in user or an error suitable for printing.
func requireUser() (*models.User, error) {
	user, err := userStore().CurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("nobody is logged in. Use 'missao login' or 'missao register'")
	}
	return user, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(childCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(voiceCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}
