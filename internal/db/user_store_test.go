package db

import (
	"testing"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

func TestRegisterAndSession(t *testing.T) {
	gdb := newTestDB(t)
	store := NewUserStore(gdb)

	user, err := store.Register("Ana", "Ana@Example.com", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("email should be normalized, got %q", user.Email)
	}
	if user.Level != 1 || user.Points != 0 {
		t.Fatalf("new accounts start at level 1 with no points")
	}

	current, err := store.CurrentUser()
	if err != nil || current == nil || current.ID != user.ID {
		t.Fatalf("registering should open the session")
	}

	if _, err := store.Register("Outro", "ana@example.com", "x"); err == nil {
		t.Fatalf("expected duplicate email to be rejected")
	}
}

func TestLoginLogout(t *testing.T) {
	gdb := newTestDB(t)
	store := NewUserStore(gdb)

	if _, err := store.Register("Ana", "ana@example.com", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if current, err := store.CurrentUser(); err != nil || current != nil {
		t.Fatalf("expected no session after logout")
	}

	if _, err := store.Login("ana@example.com", "wrong"); err == nil {
		t.Fatalf("expected a bad password to be rejected")
	}
	if _, err := store.Login("ana@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if current, err := store.CurrentUser(); err != nil || current == nil {
		t.Fatalf("expected the session to reopen on login")
	}
}

func TestCreditPointsRecomputesLevel(t *testing.T) {
	gdb := newTestDB(t)
	store := NewUserStore(gdb)
	user, err := store.Register("Ana", "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	steps := []struct {
		credit    int
		wantTotal int
		wantLevel int
	}{
		{60, 60, 1},
		{40, 100, 2},
		{150, 250, 3},
	}
	for _, step := range steps {
		if err := store.CreditPoints(user.ID, step.credit); err != nil {
			t.Fatalf("credit %d: %v", step.credit, err)
		}
		current, err := store.CurrentUser()
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if current.Points != step.wantTotal || current.Level != step.wantLevel {
			t.Fatalf("after +%d: points/level = %d/%d, want %d/%d",
				step.credit, current.Points, current.Level, step.wantTotal, step.wantLevel)
		}
	}
}

func TestCreditMedal(t *testing.T) {
	gdb := newTestDB(t)
	store := NewUserStore(gdb)
	user, err := store.Register("Ana", "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, medal := range []string{models.MedalBronze, models.MedalGold, models.MedalGold} {
		if err := store.CreditMedal(user.ID, medal); err != nil {
			t.Fatalf("credit %s: %v", medal, err)
		}
	}
	if err := store.CreditMedal(user.ID, "platinum"); err == nil {
		t.Fatalf("expected an unknown medal to be rejected")
	}

	current, err := store.CurrentUser()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if current.BronzeMedals != 1 || current.SilverMedals != 0 || current.GoldMedals != 2 {
		t.Fatalf("medals = %d/%d/%d, want 1/0/2",
			current.BronzeMedals, current.SilverMedals, current.GoldMedals)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	gdb := newTestDB(t)
	store := NewUserStore(gdb)
	user, err := store.Register("Ana", "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	badAge := 121
	if _, err := store.UpdateProfile(user.ID, UpdateProfileRequest{Age: &badAge}); err == nil {
		t.Fatalf("expected age 121 to be rejected")
	}
	badGender := "robot"
	if _, err := store.UpdateProfile(user.ID, UpdateProfileRequest{Gender: &badGender}); err == nil {
		t.Fatalf("expected an unknown gender to be rejected")
	}

	name := "Ana Maria"
	age := 34
	if _, err := store.UpdateProfile(user.ID, UpdateProfileRequest{Name: &name, Age: &age}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	current, err := store.CurrentUser()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if current.Name != "Ana Maria" || current.Age != 34 {
		t.Fatalf("profile = %q/%d, want Ana Maria/34", current.Name, current.Age)
	}
}
