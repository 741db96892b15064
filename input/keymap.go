package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Action is a gameplay command a key can trigger
type Action uint8

const (
	ActionNone Action = iota
	ActionAccelerate
	ActionRestart
	ActionQuit
	ActionMute
)

func (a Action) String() string {
	switch a {
	case ActionAccelerate:
		return "accelerate"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	case ActionMute:
		return "mute"
	default:
		return "none"
	}
}

// namedKeys maps config names to tcell special keys
var namedKeys = map[string]tcell.Key{
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"page_up":   tcell.KeyPgUp,
	"page_down": tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,
}

// Rune aliases for keys that are awkward to write as a single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Punctuation lists the single-character key names besides letters and digits;
// each is an unshifted key present on every frontend
const Punctuation = "-=[];',./`"

// KeySpec identifies one physical key: a special key, or KeyRune with a rune
type KeySpec struct {
	Key  tcell.Key
	Rune rune
}

// ParseKey resolves a config key name
// Accepts letters (case-insensitive), digits, Punctuation, the named keys, "space",
// "backslash", and "ctrl_a" through "ctrl_z"
func ParseKey(name string) (KeySpec, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return KeySpec{}, fmt.Errorf("empty key name")
	}

	if r, ok := runeAliases[n]; ok {
		return KeySpec{Key: tcell.KeyRune, Rune: r}, nil
	}
	if k, ok := namedKeys[n]; ok {
		return KeySpec{Key: k}, nil
	}
	if letter, ok := strings.CutPrefix(n, "ctrl_"); ok && len(letter) == 1 && isLetter(letter[0]) {
		return KeySpec{Key: tcell.KeyCtrlA + tcell.Key(letter[0]-'a')}, nil
	}
	if len(n) == 1 && (isLetter(n[0]) || isDigit(n[0]) || strings.IndexByte(Punctuation, n[0]) >= 0) {
		return KeySpec{Key: tcell.KeyRune, Rune: rune(n[0])}, nil
	}
	return KeySpec{}, fmt.Errorf("unknown key name %q", name)
}

func isLetter(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }

// Keymap resolves terminal key events to actions
type Keymap struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

// NewKeymap builds a keymap from key name lists
// A key bound to two actions is an error
func NewKeymap(accelerate, restart, quit, mute []string) (*Keymap, error) {
	km := &Keymap{
		keys:  make(map[tcell.Key]Action),
		runes: make(map[rune]Action),
	}

	bindings := []struct {
		action Action
		names  []string
	}{
		{ActionAccelerate, accelerate},
		{ActionRestart, restart},
		{ActionQuit, quit},
		{ActionMute, mute},
	}

	for _, b := range bindings {
		for _, name := range b.names {
			spec, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("keys.%s: %w", b.action, err)
			}
			if err := km.bind(spec, b.action); err != nil {
				return nil, fmt.Errorf("keys.%s %q: %w", b.action, name, err)
			}
		}
	}
	return km, nil
}

func (km *Keymap) bind(spec KeySpec, action Action) error {
	if spec.Key == tcell.KeyRune {
		if prev, ok := km.runes[spec.Rune]; ok && prev != action {
			return fmt.Errorf("already bound to %s", prev)
		}
		km.runes[spec.Rune] = action
		return nil
	}
	if prev, ok := km.keys[spec.Key]; ok && prev != action {
		return fmt.Errorf("already bound to %s", prev)
	}
	km.keys[spec.Key] = action
	return nil
}

// Resolve maps a key event to an action
// Letters match regardless of shift or caps lock
func (km *Keymap) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return km.runes[r]
	}
	return km.keys[ev.Key()]
}
