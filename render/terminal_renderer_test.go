package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flip-rider/asset"
	"github.com/lixenwraith/flip-rider/bike"
	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/engine"
	"github.com/lixenwraith/flip-rider/terrain"
	"github.com/lixenwraith/flip-rider/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestRenderer(t *testing.T, screen tcell.Screen) *TerminalRenderer {
	t.Helper()
	font, err := asset.DefaultSplashFont()
	if err != nil {
		t.Fatalf("font: %v", err)
	}
	return NewTerminalRenderer(screen, font)
}

func newTestFrame(t *testing.T) Frame {
	t.Helper()
	terr, err := terrain.New(terrain.DefaultConfig(), nil, vmath.NewFastRand(7))
	if err != nil {
		t.Fatalf("terrain: %v", err)
	}
	return Frame{
		Terrain: terr,
		Bike:    bike.Pose{Pos: vmath.V(constant.BikeSpawnX, constant.BikeSpawnY)},
		Camera:  vmath.V(constant.BikeSpawnX, constant.CameraCenterY),
		Session: *engine.NewSession(),
		Hint:    "SPACE accelerate",
	}
}

// countCells counts cells holding ch drawn in fg
func countCells(screen tcell.SimulationScreen, ch rune, fg tcell.Color) int {
	w, h := screen.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mainc, _, style, _ := screen.GetContent(x, y)
			gotFg, _, _ := style.Decompose()
			if mainc == ch && gotFg == fg {
				n++
			}
		}
	}
	return n
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

func TestProjectionFitsViewHeight(t *testing.T) {
	p := NewProjection(100, 37, vmath.V(750, 350))

	if p.ViewRows != 35 || p.CellH != 20 || p.CellW != 10 {
		t.Fatalf("projection = %+v", p)
	}
	if p.Origin != vmath.V(250, 0) {
		t.Errorf("origin = %v, want (250, 0)", p.Origin)
	}

	x, y := p.ToCell(vmath.V(750, 350))
	if x != 50 || y != 18 {
		t.Errorf("ToCell(centre) = (%d, %d), want (50, 18)", x, y)
	}
	if !p.InView(x, y) || p.InView(x, 0) || p.InView(-1, y) || p.InView(x, 36) {
		t.Error("InView bounds wrong")
	}

	c := p.CellCenter(x, y)
	if cx, cy := p.ToCell(c); cx != x || cy != y {
		t.Errorf("CellCenter round trip = (%d, %d)", cx, cy)
	}

	x0, x1 := p.ViewSpan()
	if x0 != 250 || x1 != 1250 {
		t.Errorf("ViewSpan = %v..%v", x0, x1)
	}
}

func TestRenderFrameDrawsScene(t *testing.T) {
	screen := newTestScreen(t, 120, 40)
	r := newTestRenderer(t, screen)
	f := newTestFrame(t)
	f.Session.Score = 7

	r.RenderFrame(f)

	surface := countCells(screen, '_', RgbTerrain) + countCells(screen, '/', RgbTerrain) + countCells(screen, '\\', RgbTerrain)
	if surface < 50 {
		t.Errorf("terrain surface cells = %d, want one per column right of the origin", surface)
	}
	if countCells(screen, '░', RgbGroundFill) == 0 {
		t.Error("no ground fill drawn")
	}
	if n := countCells(screen, 'O', RgbWheel); n < 2 {
		t.Errorf("wheel cells = %d, want at least 2", n)
	}

	proj := NewProjection(120, 40, f.Camera)
	fx, fy := proj.ToCell(f.Bike.Pos)
	if mainc, _, style, _ := screen.GetContent(fx, fy); mainc != '█' {
		t.Errorf("frame centre cell = %q", mainc)
	} else if fg, _, _ := style.Decompose(); fg != RgbFrame {
		t.Errorf("frame centre colour = %v", fg)
	}

	// Score 7 in splash digits: top row of the glyph is solid
	startX := (120 - 5) / 2
	for x := startX; x < startX+5; x++ {
		mainc, _, style, _ := screen.GetContent(x, constant.HUDRows+1)
		fg, _, _ := style.Decompose()
		if mainc != '█' || fg != RgbScore {
			t.Errorf("score cell (%d) = %q %v", x, mainc, fg)
		}
	}

	if hud := rowText(screen, 0); !strings.HasPrefix(hud, " Score 7  Best 0  Run 1") {
		t.Errorf("HUD = %q", hud)
	} else if strings.Contains(hud, "muted") {
		t.Errorf("HUD shows muted while sound is on: %q", hud)
	}
	if status := rowText(screen, 39); !strings.Contains(status, "SPACE accelerate") {
		t.Errorf("status bar = %q", status)
	}
	if !r.RestartButton().Empty() {
		t.Error("restart button present during a run")
	}
}

func TestRenderFrameShowsMuted(t *testing.T) {
	screen := newTestScreen(t, 120, 40)
	r := newTestRenderer(t, screen)
	f := newTestFrame(t)
	f.Muted = true

	r.RenderFrame(f)

	if hud := rowText(screen, 0); !strings.Contains(hud, "muted") {
		t.Errorf("HUD = %q, want a muted marker", hud)
	}
}

func TestRenderFrameGameOverOverlay(t *testing.T) {
	screen := newTestScreen(t, 120, 40)
	r := newTestRenderer(t, screen)
	f := newTestFrame(t)
	f.Session.End(engine.ReasonFrameHit)

	r.RenderFrame(f)

	button := r.RestartButton()
	if button.Empty() {
		t.Fatal("no restart button on game over")
	}
	_, want := OverlayLayout(120, 40)
	if button != want {
		t.Errorf("button = %+v, want %+v", button, want)
	}

	mid := button.Y + button.H/2
	if row := rowText(screen, mid); !strings.Contains(row, "Restart") {
		t.Errorf("button row = %q", row)
	}

	panel, _ := OverlayLayout(120, 40)
	if row := rowText(screen, panel.Y+1); !strings.Contains(row, "Game Over!") {
		t.Errorf("title row = %q", row)
	}
	if row := rowText(screen, panel.Y+2); !strings.Contains(row, "frame hit ground") {
		t.Errorf("reason row = %q", row)
	}
}

func TestRestartButtonHitTest(t *testing.T) {
	_, button := OverlayLayout(120, 40)

	tests := []struct {
		x, y int
		want bool
	}{
		{button.X, button.Y, true},
		{button.X + button.W - 1, button.Y + button.H - 1, true},
		{button.X + button.W/2, button.Y + 1, true},
		{button.X - 1, button.Y, false},
		{button.X + button.W, button.Y, false},
		{button.X, button.Y + button.H, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := button.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderFrameTooSmall(t *testing.T) {
	screen := newTestScreen(t, 80, 6)
	r := newTestRenderer(t, screen)
	f := newTestFrame(t)
	f.Session.End(engine.ReasonFell)

	r.RenderFrame(f)

	if row := rowText(screen, 0); !strings.HasPrefix(row, "terminal too small") {
		t.Errorf("row 0 = %q", row)
	}
	if !r.RestartButton().Empty() {
		t.Error("restart button reported on a screen too small to draw it")
	}
}
