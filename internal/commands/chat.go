package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/config"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/webhook"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the ADHD assistant",
	Long: `Send a message to the external assistant webhook and print the reply.
Configure the endpoint with MISSAO_WEBHOOK_URL.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		cfg := config.Load()
		client := webhook.NewClient(cfg.WebhookURL)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		fmt.Println("💭 Thinking...")
		reply, err := client.Send(ctx, user.ID, strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🤖 %s\n", reply)
	},
}
