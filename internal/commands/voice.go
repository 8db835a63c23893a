package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/voice"
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "View or update voice reminder settings",
	Long: `View or update how reminders are announced. Unknown voice types fall back
to the female voice.

Examples:
  missao voice
  missao voice --volume 60 --type male
  missao voice --off`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		req := db.UpdateVoiceRequest{}
		changed := false

		if on, _ := cmd.Flags().GetBool("on"); on {
			enabled := true
			req.Enabled = &enabled
			changed = true
		}
		if off, _ := cmd.Flags().GetBool("off"); off {
			enabled := false
			req.Enabled = &enabled
			changed = true
		}
		if cmd.Flags().Changed("volume") {
			volume, _ := cmd.Flags().GetInt("volume")
			req.Volume = &volume
			changed = true
		}
		if cmd.Flags().Changed("type") {
			voiceType, _ := cmd.Flags().GetString("type")
			req.VoiceType = &voiceType
			changed = true
		}

		store := voiceStore()
		settings, err := store.Get(user.ID)
		if changed && err == nil {
			settings, err = store.Update(user.ID, req)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		status := "off"
		if settings.Enabled {
			status = "on"
		}
		fmt.Printf("🔊 Voice reminders: %s (volume %d%%, %s voice)\n", status, settings.Volume, settings.VoiceType)

		if test, _ := cmd.Flags().GetBool("test"); test {
			announcer := voice.NewConsoleAnnouncer(os.Stdout, *settings)
			announcer.Announce("Este é um teste de lembrete por voz. Suas missões serão anunciadas nesta voz.")
		}
	},
}

func init() {
	voiceCmd.Flags().Bool("on", false, "Enable voice reminders")
	voiceCmd.Flags().Bool("off", false, "Disable voice reminders")
	voiceCmd.Flags().Int("volume", 0, "Volume (0-100)")
	voiceCmd.Flags().String("type", "", "Voice type: female or male")
	voiceCmd.Flags().Bool("test", false, "Announce a test phrase")
}
