package input

import (
	"fmt"
	"time"
)

// Mode selects how presses of the accelerate key are turned into a held state
type Mode uint8

const (
	// ModeHold treats the key as held while presses keep arriving
	ModeHold Mode = iota
	// ModeToggle flips the held state on every press
	ModeToggle
)

// ParseMode maps a config name to a Mode
func ParseMode(name string) (Mode, error) {
	switch name {
	case "hold", "":
		return ModeHold, nil
	case "toggle":
		return ModeToggle, nil
	default:
		return ModeHold, fmt.Errorf("unknown input mode %q", name)
	}
}

func (m Mode) String() string {
	if m == ModeToggle {
		return "toggle"
	}
	return "hold"
}

// HoldTracker emulates a held key from press events alone
// Terminals report presses and auto-repeats but never releases. A first press
// holds for the initial window (covering the auto-repeat delay) and each repeat
// extends the hold by the shorter repeat window.
type HoldTracker struct {
	mode    Mode
	initial time.Duration
	repeat  time.Duration

	until   time.Time
	toggled bool
}

// NewHoldTracker creates a tracker with the given windows
func NewHoldTracker(mode Mode, initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		mode:    mode,
		initial: initial,
		repeat:  repeat,
	}
}

// Press records a key press at now
func (h *HoldTracker) Press(now time.Time) {
	if h.mode == ModeToggle {
		h.toggled = !h.toggled
		return
	}

	if now.Before(h.until) {
		h.until = now.Add(h.repeat)
	} else {
		h.until = now.Add(h.initial)
	}
}

// Held reports whether the key counts as held at now
func (h *HoldTracker) Held(now time.Time) bool {
	if h.mode == ModeToggle {
		return h.toggled
	}
	return now.Before(h.until)
}

// Release drops any held state
func (h *HoldTracker) Release() {
	h.until = time.Time{}
	h.toggled = false
}

// Mode returns the tracker mode
func (h *HoldTracker) Mode() Mode {
	return h.mode
}
