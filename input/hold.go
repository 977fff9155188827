package input

import "time"

// Terminals report key presses (and auto-repeat) but never key releases.
// HoldTracker infers a release once repeats stop arriving.
const (
	// DefaultInitialHold covers the typical OS delay before auto-repeat starts
	DefaultInitialHold = 550 * time.Millisecond
	// DefaultRepeatHold covers the gap between consecutive auto-repeat events
	DefaultRepeatHold = 120 * time.Millisecond
)

type heldKey struct {
	deadline time.Time
}

// HoldTracker converts a stream of press/repeat events into press/release pairs
// Not safe for concurrent use; owned by the driver loop
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[Key]heldKey
}

// NewHoldTracker creates a tracker; zero durations select the defaults
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[Key]heldKey),
	}
}

// Press records a key event at now
// Returns true if this is a fresh press, false if it is an auto-repeat of a held key
func (h *HoldTracker) Press(k Key, now time.Time) bool {
	if _, ok := h.held[k]; ok {
		h.held[k] = heldKey{deadline: now.Add(h.repeat)}
		return false
	}
	h.held[k] = heldKey{deadline: now.Add(h.initial)}
	return true
}

// Expire removes keys whose hold deadline has passed and appends them to dst
func (h *HoldTracker) Expire(now time.Time, dst []Key) []Key {
	for k, hk := range h.held {
		if !now.Before(hk.deadline) {
			delete(h.held, k)
			dst = append(dst, k)
		}
	}
	return dst
}

// Held reports whether k is currently considered down
func (h *HoldTracker) Held(k Key) bool {
	_, ok := h.held[k]
	return ok
}

// Reset forgets all held keys, returning them for release
func (h *HoldTracker) Reset(dst []Key) []Key {
	for k := range h.held {
		delete(h.held, k)
		dst = append(dst, k)
	}
	return dst
}
