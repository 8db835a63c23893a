package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/config"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/schedule"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/voice"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/watcher"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show missions starting in the next 15 minutes",
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

		upcoming := schedule.UpcomingReminders(tasks, time.Now())
		if len(upcoming) == 0 {
			fmt.Println("Nothing starting in the next 15 minutes.")
			return
		}

		fmt.Println("🔔 Starting soon:")
		for _, task := range upcoming {
			fmt.Printf("  %s  %s\n", task.StartTime, task.Title)
		}
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the reminder watcher in the foreground",
	Long: `Run the background ticks in the foreground: a reminder check every minute
(announcing missions about to start) and a periodic motivational phrase.
Stop with Ctrl+C.`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		settings, err := voiceStore().Get(user.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		cfg := config.Load()
		announcer := voice.NewConsoleAnnouncer(os.Stdout, *settings)

		w := watcher.New(time.Local, taskStore(), announcer, user.ID)
		if err := w.Schedule(cfg.MotivationInterval); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		w.Start()
		defer w.Stop()

		fmt.Println("👀 Watching for reminders. Press Ctrl+C to stop.")

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		fmt.Println("\nStopped.")
	},
}
