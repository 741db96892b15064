package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		want    KeySpec
		wantErr bool
	}{
		{"space", KeySpec{Key: tcell.KeyRune, Rune: ' '}, false},
		{"Space", KeySpec{Key: tcell.KeyRune, Rune: ' '}, false},
		{"enter", KeySpec{Key: tcell.KeyEnter}, false},
		{"escape", KeySpec{Key: tcell.KeyEscape}, false},
		{"up", KeySpec{Key: tcell.KeyUp}, false},
		{"ctrl_c", KeySpec{Key: tcell.KeyCtrlC}, false},
		{"ctrl_z", KeySpec{Key: tcell.KeyCtrlZ}, false},
		{"r", KeySpec{Key: tcell.KeyRune, Rune: 'r'}, false},
		{"R", KeySpec{Key: tcell.KeyRune, Rune: 'r'}, false},
		{"7", KeySpec{Key: tcell.KeyRune, Rune: '7'}, false},
		{"/", KeySpec{Key: tcell.KeyRune, Rune: '/'}, false},
		{"backslash", KeySpec{Key: tcell.KeyRune, Rune: '\\'}, false},
		{"!", KeySpec{}, true},
		{"é", KeySpec{}, true},
		{"", KeySpec{}, true},
		{"hyperspace", KeySpec{}, true},
		{"ctrl_1", KeySpec{}, true},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKey(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestKeymapResolve(t *testing.T) {
	km, err := NewKeymap([]string{"space", "up"}, []string{"r", "enter"}, []string{"q", "escape", "ctrl_c"}, []string{"m"})
	if err != nil {
		t.Fatalf("NewKeymap: %v", err)
	}

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionAccelerate},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionAccelerate},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRestart},
		{"shifted R", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift), ActionRestart},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), ActionMute},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionRestart},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Resolve(tt.ev); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeymapRejectsConflicts(t *testing.T) {
	if _, err := NewKeymap([]string{"space"}, []string{"space"}, []string{"q"}, nil); err == nil {
		t.Error("expected conflict error for key bound twice")
	}
	if _, err := NewKeymap([]string{"bogus_key"}, []string{"r"}, []string{"q"}, nil); err == nil {
		t.Error("expected error for unknown key name")
	}
	// Repeating a key for the same action is fine
	if _, err := NewKeymap([]string{"space", "space"}, []string{"r"}, []string{"q"}, nil); err != nil {
		t.Errorf("duplicate binding for one action rejected: %v", err)
	}
	// Letters are case-insensitive, so R and r are the same key
	if _, err := NewKeymap([]string{"space"}, []string{"R"}, []string{"r"}, nil); err == nil {
		t.Error("expected conflict error for R and r on different actions")
	}
}
