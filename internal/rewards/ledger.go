package rewards

import (
	"gorm.io/gorm"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

// Medal award cutoffs, applied to a single task's point value on completion.
const (
	goldCutoff   = 50
	silverCutoff = 25
)

// Completed-task counts needed to show each medal tier as reached on the
// progress screens. This is a display threshold only: actual medals are
// awarded per completed task, by that task's point value.
const (
	BronzeRequirement = 5
	SilverRequirement = 10
	GoldRequirement   = 15
)

// Ledger owns the reward rules: what completing a task is worth, who gets
// the points, and which medal the completion mints.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(gdb *gorm.DB) *Ledger {
	return &Ledger{db: gdb}
}

// Complete marks the task completed and settles its rewards, all inside one
// transaction: either the flag flips and every credit lands, or nothing
// changes. It is idempotent: an unknown id or an already-completed task is a
// no-op, so points and medals can never be awarded twice for one task.
//
// A task delegated to children pays its full point value to every assignee;
// nothing goes to the owning user. An undelegated task pays the owning user
// and mints exactly one medal, tier chosen by the task's own point value.
func (l *Ledger) Complete(userID, taskID string) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		tasks := db.NewTaskStore(tx)

		task, err := tasks.GetByID(userID, taskID)
		if err != nil {
			return nil // unknown task: the caller is expected to keep ids valid
		}
		if task.Completed {
			return nil
		}

		if err := tasks.SetCompleted(userID, taskID); err != nil {
			return err
		}

		if task.ChildAssigned {
			children := db.NewChildStore(tx)
			for _, childID := range task.AssigneeIDs() {
				if err := children.CreditPoints(userID, childID, task.Points); err != nil {
					return err
				}
			}
			return nil
		}

		users := db.NewUserStore(tx)
		if err := users.CreditPoints(userID, task.Points); err != nil {
			return err
		}
		return users.CreditMedal(userID, MedalForPoints(task.Points))
	})
}

// MedalForPoints maps a single task's point value to the medal tier its
// completion awards.
func MedalForPoints(points int) string {
	switch {
	case points >= goldCutoff:
		return models.MedalGold
	case points >= silverCutoff:
		return models.MedalSilver
	default:
		return models.MedalBronze
	}
}

// MedalRequirement returns the completed-task count at which the progress
// screens show the given tier as reached. Zero for unknown tiers.
func MedalRequirement(medal string) int {
	switch medal {
	case models.MedalBronze:
		return BronzeRequirement
	case models.MedalSilver:
		return SilverRequirement
	case models.MedalGold:
		return GoldRequirement
	}
	return 0
}
