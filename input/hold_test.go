package input

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestHoldSinglePressReleasesAfterInitialDelay(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)

	if !h.Press("w", t0) {
		t.Fatal("Expected first press to be fresh")
	}

	if got := h.Expire(t0.Add(499*time.Millisecond), nil); len(got) != 0 {
		t.Errorf("Expected no release before deadline, got %v", got)
	}
	if !h.Held("w") {
		t.Error("Expected w held")
	}

	got := h.Expire(t0.Add(500*time.Millisecond), nil)
	if len(got) != 1 || got[0] != "w" {
		t.Fatalf("Expected release of w, got %v", got)
	}

	if got := h.Expire(t0.Add(time.Second), nil); len(got) != 0 {
		t.Errorf("Expected release exactly once, got %v", got)
	}
}

func TestHoldRepeatsExtend(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	h.Press("s", t0)

	now := t0.Add(450 * time.Millisecond)
	for i := 0; i < 10; i++ {
		if h.Press("s", now) {
			t.Fatalf("repeat %d reported as fresh press", i)
		}
		now = now.Add(50 * time.Millisecond)
		if got := h.Expire(now, nil); len(got) != 0 {
			t.Fatalf("repeat %d: unexpected release %v", i, got)
		}
	}

	// Repeats stop: release after the repeat gap
	got := h.Expire(now.Add(100*time.Millisecond), nil)
	if len(got) != 1 || got[0] != "s" {
		t.Errorf("Expected release of s, got %v", got)
	}
}

func TestHoldIndependentKeys(t *testing.T) {
	h := NewHoldTracker(0, 0)
	h.Press("w", t0)
	h.Press("i", t0.Add(300*time.Millisecond))

	got := h.Expire(t0.Add(DefaultInitialHold), nil)
	if len(got) != 1 || got[0] != "w" {
		t.Errorf("Expected only w released, got %v", got)
	}
	if !h.Held("i") {
		t.Error("Expected i still held")
	}

	rest := h.Reset(nil)
	if len(rest) != 1 || rest[0] != "i" {
		t.Errorf("Expected reset to release i, got %v", rest)
	}
	if h.Held("i") {
		t.Error("Expected nothing held after reset")
	}
}
