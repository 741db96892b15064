package terminal

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/flip-rider/input"
)

// Hint builds the status bar key summary from the configured key names
// The mute entry is left out when no mute key is bound
func Hint(accelerate, restart, quit, mute []string, mode input.Mode) string {
	verb := "hold"
	if mode == input.ModeToggle {
		verb = "toggle"
	}
	hint := fmt.Sprintf("%s: %s accelerate / flip   %s: restart   %s: quit",
		keyList(accelerate), verb, keyList(restart), keyList(quit))
	if len(mute) > 0 {
		hint += fmt.Sprintf("   %s: mute", keyList(mute))
	}
	return hint
}

func keyList(names []string) string {
	upper := make([]string, len(names))
	for i, n := range names {
		upper[i] = strings.ToUpper(n)
	}
	return strings.Join(upper, "/")
}
