package show

import (
	"testing"
	"time"
)

func TestNewShow(t *testing.T) {
	sh := New("My Show")

	if sh.Name != "My Show" {
		t.Errorf("Expected name 'My Show', got %q", sh.Name)
	}
	if sh.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Expected a non-nil show identifier")
	}
}

func TestNewShowFreshIdentifiers(t *testing.T) {
	// Every show gets its own identifier, two shows must never share one.
	first := New("First Show")
	second := New("Second Show")

	if first.ID == second.ID {
		t.Errorf("Expected distinct identifiers, both got %s", first.ID)
	}
}

func TestShowPeriod(t *testing.T) {
	sh := New("My Show")

	start := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	if err := sh.SetStart(start); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}
	if err := sh.SetEnd(start.Add(time.Hour)); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}

	if sh.Duration() != time.Hour {
		t.Errorf("Expected duration 1h, got %v", sh.Duration())
	}
}
