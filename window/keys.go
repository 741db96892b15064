package window

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/flip-rider/input"
)

// Binding is one configured key; Ctrl bindings fire only with a control key down
// and plain bindings only without one
type Binding struct {
	Key  ebiten.Key
	Ctrl bool
}

// namedKeys maps terminal special keys to ebiten key names as reported by Key.String
var namedKeys = map[tcell.Key]string{
	tcell.KeyEscape:     "Escape",
	tcell.KeyEnter:      "Enter",
	tcell.KeyTab:        "Tab",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyInsert:     "Insert",
}

var runeKeys = map[rune]string{
	' ':  "Space",
	'-':  "Minus",
	'=':  "Equal",
	'[':  "BracketLeft",
	']':  "BracketRight",
	';':  "Semicolon",
	'\'': "Quote",
	',':  "Comma",
	'.':  "Period",
	'/':  "Slash",
	'`':  "Backquote",
	'\\': "Backslash",
}

var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[k.String()] = k
	}
	return m
}()

// ParseBinding maps a config key name to an ebiten key
// Names are parsed by input.ParseKey so both frontends accept the same set
func ParseBinding(name string) (Binding, error) {
	spec, err := input.ParseKey(name)
	if err != nil {
		return Binding{}, fmt.Errorf("window: %w", err)
	}

	var b Binding
	var ebName string
	switch {
	case spec.Key == tcell.KeyRune && spec.Rune >= 'a' && spec.Rune <= 'z':
		ebName = string(spec.Rune - 'a' + 'A')
	case spec.Key == tcell.KeyRune && spec.Rune >= '0' && spec.Rune <= '9':
		ebName = "Digit" + string(spec.Rune)
	case spec.Key == tcell.KeyRune:
		ebName = runeKeys[spec.Rune]
	case namedKeys[spec.Key] != "":
		ebName = namedKeys[spec.Key]
	case spec.Key >= tcell.KeyCtrlA && spec.Key <= tcell.KeyCtrlZ:
		b.Ctrl = true
		ebName = string(rune('A' + spec.Key - tcell.KeyCtrlA))
	}

	k, ok := keysByName[ebName]
	if ebName == "" || !ok {
		return Binding{}, fmt.Errorf("window: no key for %q", name)
	}
	b.Key = k
	return b, nil
}

// Keymap resolves configured key names to window actions
type Keymap struct {
	bindings map[input.Action][]Binding
}

// NewKeymap parses the key name lists for each action
// A key bound to two actions is an error
func NewKeymap(accelerate, restart, quit, mute []string) (*Keymap, error) {
	km := &Keymap{bindings: make(map[input.Action][]Binding, 4)}
	owner := make(map[Binding]input.Action)
	for _, group := range []struct {
		action input.Action
		names  []string
	}{
		{input.ActionAccelerate, accelerate},
		{input.ActionRestart, restart},
		{input.ActionQuit, quit},
		{input.ActionMute, mute},
	} {
		for _, name := range group.names {
			b, err := ParseBinding(name)
			if err != nil {
				return nil, fmt.Errorf("keys.%s: %w", group.action, err)
			}
			if prev, ok := owner[b]; ok {
				if prev != group.action {
					return nil, fmt.Errorf("keys.%s %q: already bound to %s", group.action, name, prev)
				}
				continue
			}
			owner[b] = group.action
			km.bindings[group.action] = append(km.bindings[group.action], b)
		}
	}
	return km, nil
}

// Bindings returns the keys bound to action
func (km *Keymap) Bindings(action input.Action) []Binding {
	return km.bindings[action]
}

// Any reports whether pressed matches any binding of action with the given control state
func (km *Keymap) Any(action input.Action, ctrl bool, pressed func(ebiten.Key) bool) bool {
	for _, b := range km.bindings[action] {
		if b.Ctrl != ctrl {
			continue
		}
		if pressed(b.Key) {
			return true
		}
	}
	return false
}
