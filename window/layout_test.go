package window

import (
	"testing"

	"github.com/lixenwraith/flip-rider/constant"
)

func TestPanelLayout(t *testing.T) {
	panel, button := PanelLayout()

	if panel.Dx() != constant.PanelWidth || panel.Dy() != constant.PanelHeight {
		t.Errorf("panel size %dx%d", panel.Dx(), panel.Dy())
	}
	if cx := (panel.Min.X + panel.Max.X) / 2; cx != constant.ScreenWidth/2 {
		t.Errorf("panel centre x = %d, want %d", cx, constant.ScreenWidth/2)
	}
	if !button.In(panel) {
		t.Errorf("button %v outside panel %v", button, panel)
	}
	if button.Dx() != constant.PanelButtonWidth || button.Dy() != constant.PanelButtonHeight {
		t.Errorf("button size %dx%d", button.Dx(), button.Dy())
	}
}

func TestHitButton(t *testing.T) {
	_, button := PanelLayout()
	cx, cy := (button.Min.X+button.Max.X)/2, (button.Min.Y+button.Max.Y)/2

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"centre", cx, cy, true},
		{"top left corner", button.Min.X, button.Min.Y, true},
		{"right edge exclusive", button.Max.X, cy, false},
		{"above", cx, button.Min.Y - 1, false},
		{"origin", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitButton(tt.x, tt.y); got != tt.want {
				t.Errorf("HitButton(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLoadScoreFace(t *testing.T) {
	face, err := LoadScoreFace("", 48)
	if err != nil {
		t.Fatalf("default face: %v", err)
	}
	if face == nil {
		t.Fatal("nil face")
	}

	if _, err := LoadScoreFace("/nonexistent/font.ttf", 48); err == nil {
		t.Error("expected error for missing font file")
	}
}
