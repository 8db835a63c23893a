package voice

import (
	"fmt"
	"io"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

// Announcer renders a reminder or motivational text for the user. The core
// only decides whether and what to announce; how it becomes audio (or text)
// lives behind this interface.
type Announcer interface {
	Announce(text string)
}

// ConsoleAnnouncer prints announcements to a writer, honoring the user's
// voice settings: disabled settings silence it entirely.
type ConsoleAnnouncer struct {
	Out      io.Writer
	Settings models.VoiceSettings
}

func NewConsoleAnnouncer(out io.Writer, settings models.VoiceSettings) *ConsoleAnnouncer {
	settings.VoiceType = models.NormalizeVoiceType(settings.VoiceType)
	return &ConsoleAnnouncer{Out: out, Settings: settings}
}

func (a *ConsoleAnnouncer) Announce(text string) {
	if !a.Settings.Enabled {
		return
	}
	fmt.Fprintf(a.Out, "🔊 [%s voice, vol %d%%] %s\n", a.Settings.VoiceType, a.Settings.Volume, text)
}
