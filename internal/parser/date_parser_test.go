package parser

import (
	"testing"
	"time"
)

func TestParseDueDateAbsolute(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"15/12/2026", time.Date(2026, time.December, 15, 0, 0, 0, 0, time.Local), false},
		{"1/1/2024", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), false},
		{"29/02/2024", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local), false},
		{"29/02/2025", time.Time{}, true}, // not a leap year
		{"31/04/2026", time.Time{}, true}, // April has 30 days
		{"15/13/2026", time.Time{}, true},
		{"0/01/2026", time.Time{}, true},
		{"15/12/2023", time.Time{}, true}, // below the year floor
		{"15/12/2101", time.Time{}, true},
		{"garbage", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDueDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDueDate(%q): %v", tt.input, err)
			}
			if got == nil || !got.Equal(tt.want) {
				t.Fatalf("ParseDueDate(%q) = %v, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDueDateRelative(t *testing.T) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", today},
		{"tomorrow", today.AddDate(0, 0, 1)},
		{"3 days", today.AddDate(0, 0, 3)},
		{"1 day", today.AddDate(0, 0, 1)},
		{"2 weeks", today.AddDate(0, 0, 14)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDueDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDueDate(%q): %v", tt.input, err)
			}
			if got == nil || !got.Equal(tt.want) {
				t.Fatalf("ParseDueDate(%q) = %v, want %s", tt.input, got, tt.want)
			}
			if h, m, s := got.Clock(); h != 0 || m != 0 || s != 0 {
				t.Fatalf("due dates must be normalized to midnight, got %v", got)
			}
		})
	}

	for _, input := range []string{"0 days", "366 days", "53 weeks", "2 months"} {
		if _, err := ParseDueDate(input); err == nil {
			t.Fatalf("expected an error for %q", input)
		}
	}
}

func TestParseDueDateEmptyIsNil(t *testing.T) {
	got, err := ParseDueDate("")
	if err != nil || got != nil {
		t.Fatalf("empty input should mean no due date, got %v / %v", got, err)
	}
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("08:30")
	if err != nil || hour != 8 || minute != 30 {
		t.Fatalf("ParseClock(08:30) = %d:%d, %v", hour, minute, err)
	}

	for _, input := range []string{"24:00", "12:60", "8h30", "", "12:30:00"} {
		if _, _, err := ParseClock(input); err == nil {
			t.Fatalf("expected an error for %q", input)
		}
	}
}
