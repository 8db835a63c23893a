package db

import (
	"testing"
	"time"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

func TestCycleDefaultsAndUpdate(t *testing.T) {
	gdb := newTestDB(t)
	user := newTestUser(t, gdb)
	store := NewCycleStore(gdb)

	cycle, err := store.Get(user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cycle.CurrentPhase != models.PhaseNone {
		t.Fatalf("default phase = %q, want none", cycle.CurrentPhase)
	}

	phase := models.PhaseLuteal
	length := 28
	start := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.Local)
	if _, err := store.Update(user.ID, UpdateCycleRequest{
		CurrentPhase: &phase,
		CycleLength:  &length,
		CycleStart:   &start,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	cycle, err = store.Get(user.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cycle.CurrentPhase != models.PhaseLuteal || cycle.CycleLength != 28 {
		t.Fatalf("cycle = %q/%d, want luteal/28", cycle.CurrentPhase, cycle.CycleLength)
	}

	badPhase := "waning"
	if _, err := store.Update(user.ID, UpdateCycleRequest{CurrentPhase: &badPhase}); err == nil {
		t.Fatalf("expected an unknown phase to be rejected")
	}
	badLength := 19
	if _, err := store.Update(user.ID, UpdateCycleRequest{CycleLength: &badLength}); err == nil {
		t.Fatalf("expected a 19-day cycle to be rejected")
	}
}

func TestVoiceDefaultsAndUpdate(t *testing.T) {
	gdb := newTestDB(t)
	user := newTestUser(t, gdb)
	store := NewVoiceStore(gdb)

	settings, err := store.Get(user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !settings.Enabled || settings.Volume != 80 || settings.VoiceType != models.VoiceFemale {
		t.Fatalf("defaults = %v/%d/%q, want enabled/80/female",
			settings.Enabled, settings.Volume, settings.VoiceType)
	}

	off := false
	volume := 55
	robot := "robot" // unknown types fall back to female
	settings, err = store.Update(user.ID, UpdateVoiceRequest{
		Enabled:   &off,
		Volume:    &volume,
		VoiceType: &robot,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if settings.Enabled || settings.Volume != 55 || settings.VoiceType != models.VoiceFemale {
		t.Fatalf("settings = %v/%d/%q after update", settings.Enabled, settings.Volume, settings.VoiceType)
	}

	badVolume := 101
	if _, err := store.Update(user.ID, UpdateVoiceRequest{Volume: &badVolume}); err == nil {
		t.Fatalf("expected volume 101 to be rejected")
	}
}
