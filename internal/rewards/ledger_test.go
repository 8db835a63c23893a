package rewards

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

type fixture struct {
	gdb      *gorm.DB
	tasks    *db.TaskStore
	children *db.ChildStore
	users    *db.UserStore
	ledger   *Ledger
	user     *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	f := &fixture{
		gdb:      gdb,
		tasks:    db.NewTaskStore(gdb),
		children: db.NewChildStore(gdb),
		users:    db.NewUserStore(gdb),
	}
	f.ledger = NewLedger(gdb)

	f.user, err = f.users.Register("Ana", "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	return f
}

func (f *fixture) createTask(t *testing.T, req db.CreateTaskRequest) *models.Task {
	t.Helper()
	req.UserID = f.user.ID
	task, err := f.tasks.Create(req)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func (f *fixture) reloadUser(t *testing.T) *models.User {
	t.Helper()
	user, err := f.users.CurrentUser()
	if err != nil || user == nil {
		t.Fatalf("reload user: %v", err)
	}
	return user
}

func (f *fixture) addChild(t *testing.T, name string) *models.Child {
	t.Helper()
	child, err := f.children.Create(db.CreateChildRequest{
		UserID:      f.user.ID,
		Name:        name,
		Age:         9,
		AvatarColor: "green",
	})
	if err != nil {
		t.Fatalf("create child %s: %v", name, err)
	}
	return child
}

func TestCompleteAwardsPointsAndMedal(t *testing.T) {
	f := newFixture(t)
	due := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	task := f.createTask(t, db.CreateTaskRequest{
		Title:      "Organizar a semana",
		Points:     30,
		Recurrence: models.RecurrenceWeekly,
		DueDate:    &due,
	})

	if err := f.ledger.Complete(f.user.ID, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	user := f.reloadUser(t)
	if user.Points != 30 {
		t.Fatalf("points = %d, want 30", user.Points)
	}
	if user.SilverMedals != 1 || user.BronzeMedals != 0 || user.GoldMedals != 0 {
		t.Fatalf("medals = %d/%d/%d, want exactly one silver",
			user.BronzeMedals, user.SilverMedals, user.GoldMedals)
	}
	if user.Level != 1 {
		t.Fatalf("level = %d, want 1", user.Level)
	}

	done, err := f.tasks.GetByID(f.user.ID, task.ID)
	if err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if !done.Completed {
		t.Fatalf("task should be marked completed")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	f := newFixture(t)
	task := f.createTask(t, db.CreateTaskRequest{Title: "Ler", Points: 40})

	for i := 0; i < 3; i++ {
		if err := f.ledger.Complete(f.user.ID, task.ID); err != nil {
			t.Fatalf("complete #%d: %v", i+1, err)
		}
	}

	user := f.reloadUser(t)
	if user.Points != 40 {
		t.Fatalf("points = %d, want 40 (single award)", user.Points)
	}
	if user.SilverMedals != 1 {
		t.Fatalf("silver medals = %d, want 1 (single award)", user.SilverMedals)
	}
}

func TestCompleteUnknownTaskIsNoOp(t *testing.T) {
	f := newFixture(t)

	if err := f.ledger.Complete(f.user.ID, "does-not-exist"); err != nil {
		t.Fatalf("unknown task must be a silent no-op, got %v", err)
	}
	if user := f.reloadUser(t); user.Points != 0 {
		t.Fatalf("points = %d, want 0", user.Points)
	}
}

func TestCompleteFansOutFullValueToEachChild(t *testing.T) {
	f := newFixture(t)
	bia := f.addChild(t, "Bia")
	caio := f.addChild(t, "Caio")

	task := f.createTask(t, db.CreateTaskRequest{
		Title:    "Arrumar o quarto",
		Points:   20,
		ChildIDs: []string{bia.ID, caio.ID},
	})

	if err := f.ledger.Complete(f.user.ID, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	for _, id := range []string{bia.ID, caio.ID} {
		child, err := f.children.GetByID(f.user.ID, id)
		if err != nil {
			t.Fatalf("reload child: %v", err)
		}
		if child.Points != 20 {
			t.Fatalf("child %s points = %d, want the full 20", child.Name, child.Points)
		}
	}

	user := f.reloadUser(t)
	if user.Points != 0 || user.BronzeMedals+user.SilverMedals+user.GoldMedals != 0 {
		t.Fatalf("a delegated task must not pay the owning user")
	}
}

func TestCompleteLevelsUpFromTotal(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		task := f.createTask(t, db.CreateTaskRequest{Title: "Grande", Points: 90})
		if err := f.ledger.Complete(f.user.ID, task.ID); err != nil {
			t.Fatalf("complete: %v", err)
		}
	}

	user := f.reloadUser(t)
	if user.Points != 270 {
		t.Fatalf("points = %d, want 270", user.Points)
	}
	if user.Level != 3 {
		t.Fatalf("level = %d, want 3 (one level per hundred points)", user.Level)
	}
}

// Completion settles atomically: when a credit cannot land, the completion
// flag must roll back with it.
func TestCompleteRollsBackWhenAwardFails(t *testing.T) {
	f := newFixture(t)
	task := f.createTask(t, db.CreateTaskRequest{Title: "Órfã", Points: 10})

	// Drop the account row out from under the task so the point credit fails.
	if err := f.gdb.Delete(&models.User{}, "id = ?", f.user.ID).Error; err != nil {
		t.Fatalf("delete user row: %v", err)
	}

	if err := f.ledger.Complete(f.user.ID, task.ID); err == nil {
		t.Fatalf("expected the failed credit to surface")
	}

	reloaded, err := f.tasks.GetByID(f.user.ID, task.ID)
	if err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if reloaded.Completed {
		t.Fatalf("a failed settlement must leave the task uncompleted")
	}
}

func TestMedalForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{1, models.MedalBronze},
		{24, models.MedalBronze},
		{25, models.MedalSilver},
		{49, models.MedalSilver},
		{50, models.MedalGold},
		{100, models.MedalGold},
	}
	for _, tt := range tests {
		if got := MedalForPoints(tt.points); got != tt.want {
			t.Fatalf("MedalForPoints(%d) = %q, want %q", tt.points, got, tt.want)
		}
	}
}

func TestMedalRequirement(t *testing.T) {
	if MedalRequirement(models.MedalBronze) != 5 ||
		MedalRequirement(models.MedalSilver) != 10 ||
		MedalRequirement(models.MedalGold) != 15 {
		t.Fatalf("progress thresholds must be 5/10/15 completed tasks")
	}
	if MedalRequirement("platinum") != 0 {
		t.Fatalf("unknown tiers have no requirement")
	}
}
