package watcher

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/motivation"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/schedule"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/voice"
)

// Watcher owns the periodic background ticks: the reminder check every
// schedule.TickInterval and the motivational prompt at a configured
// interval. Both are fire-and-forget once scheduled; Stop drains them so no
// timer outlives the command that started it.
type Watcher struct {
	cron      *cron.Cron
	tasks     *db.TaskStore
	announcer voice.Announcer
	userID    string
}

func New(loc *time.Location, tasks *db.TaskStore, announcer voice.Announcer, userID string) *Watcher {
	return &Watcher{
		cron:      cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		tasks:     tasks,
		announcer: announcer,
		userID:    userID,
	}
}

// Schedule registers the reminder tick and, when motivationEvery is
// positive, the motivational prompt tick.
func (w *Watcher) Schedule(motivationEvery time.Duration) error {
	reminderSpec := fmt.Sprintf("@every %ds", int(schedule.TickInterval.Seconds()))
	if _, err := w.cron.AddFunc(reminderSpec, w.checkReminders); err != nil {
		return err
	}

	if motivationEvery > 0 {
		motivationSpec := fmt.Sprintf("@every %ds", int(motivationEvery.Seconds()))
		if _, err := w.cron.AddFunc(motivationSpec, func() {
			w.announcer.Announce(motivation.RandomPhrase())
		}); err != nil {
			return err
		}
	}

	return nil
}

func (w *Watcher) Start() {
	w.cron.Start()
}

// Stop halts the ticks and waits for any running job to finish.
func (w *Watcher) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

// checkReminders announces tasks inside the narrow alert band. The band is
// shorter than the tick interval's reach into the open window, so one task
// is announced once, not on every tick.
func (w *Watcher) checkReminders() {
	tasks, err := w.tasks.ListByUser(w.userID)
	if err != nil {
		log.Printf("reminder check: %v", err)
		return
	}

	for _, task := range schedule.DueForAlert(tasks, time.Now()) {
		w.announcer.Announce(fmt.Sprintf("Sua missão \"%s\" começa às %s. Prepare-se!", task.Title, task.StartTime))
	}
}
