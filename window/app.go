package window

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/flip-rider/bike"
	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/engine"
	"github.com/lixenwraith/flip-rider/input"
	"github.com/lixenwraith/flip-rider/vmath"
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorTerrain    = color.RGBA{0, 255, 0, 255}
	colorFrame      = color.RGBA{0, 0, 255, 255}
	colorWheel      = color.RGBA{255, 0, 0, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorHUD        = color.RGBA{180, 180, 180, 255}
	colorPanel      = color.RGBA{0, 0, 0, 200}
	colorGameOver   = color.RGBA{255, 0, 0, 255}
	colorButton     = color.RGBA{0, 0, 255, 255}
)

// Muter toggles the sound cues; the audio manager implements it
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// App implements ebiten.Game for the window frontend
type App struct {
	game  *engine.Game
	keys  *Keymap
	muter Muter
	debug bool

	scoreFace text.Face
	smallFace text.Face
	pixel     *ebiten.Image
}

// NewApp wires a game to the window; scoreFace comes from LoadScoreFace
// A nil muter makes the mute key do nothing
func NewApp(game *engine.Game, keys *Keymap, scoreFace text.Face, muter Muter, debug bool) *App {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &App{
		game:      game,
		keys:      keys,
		muter:     muter,
		debug:     debug,
		scoreFace: scoreFace,
		smallFace: smallFace(),
		pixel:     pixel,
	}
}

// Update runs one fixed tick at ebiten's TPS
func (a *App) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	if a.keys.Any(input.ActionQuit, ctrl, inpututil.IsKeyJustPressed) {
		log.Printf("Quit requested")
		return ebiten.Termination
	}

	if a.muter != nil && a.keys.Any(input.ActionMute, ctrl, inpututil.IsKeyJustPressed) {
		log.Printf("Sound muted: %v", a.muter.ToggleMute())
	}

	restart := a.keys.Any(input.ActionRestart, ctrl, inpututil.IsKeyJustPressed)
	if !a.game.Session().Active() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		restart = restart || HitButton(ebiten.CursorPosition())
	}
	if restart {
		a.game.Restart()
		return nil
	}

	held := a.keys.Any(input.ActionAccelerate, ctrl, ebiten.IsKeyPressed)
	if _, err := a.game.Tick(engine.Input{Accelerate: held}); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	return nil
}

// Draw renders the world in camera space and the overlays in screen space
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	origin := a.game.Camera().Origin(constant.ScreenWidth, constant.ScreenHeight)
	a.drawTerrain(screen, origin)
	a.drawBike(screen, origin, a.game.BikePose())

	s := a.game.Session()
	a.drawHUD(screen, s)
	if s.Over {
		a.drawGameOver(screen, s)
	}

	if a.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  steps %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), a.game.Steps()), 4, constant.ScreenHeight-20)
	}
}

// Layout fixes the logical screen to the world view; ebiten scales it to the window
func (a *App) Layout(_, _ int) (int, int) {
	return constant.ScreenWidth, constant.ScreenHeight
}

func (a *App) drawTerrain(screen *ebiten.Image, origin vmath.Vec2) {
	pts := a.game.Terrain().Visible(origin.X, origin.X+constant.ScreenWidth)
	for i := 1; i < len(pts); i++ {
		p0 := pts[i-1].Scale(constant.PixelsPerMeter).Sub(origin)
		p1 := pts[i].Scale(constant.PixelsPerMeter).Sub(origin)
		vector.StrokeLine(screen, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y),
			constant.TerrainLineWidth, colorTerrain, true)
	}
}

func (a *App) drawBike(screen *ebiten.Image, origin vmath.Vec2, pose bike.Pose) {
	w := 2 * constant.FrameHalfWidth
	h := 2 * constant.FrameHalfHeight
	c := pose.Pos.Sub(origin)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(pose.Angle)
	op.GeoM.Translate(c.X, c.Y)
	op.ColorScale.ScaleWithColor(colorFrame)
	screen.DrawImage(a.pixel, op)

	rear, front := bike.WheelCenters(pose)
	for _, wc := range []vmath.Vec2{rear, front} {
		p := wc.Sub(origin)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), constant.WheelRadius, colorWheel, true)
	}
}

func (a *App) drawHUD(screen *ebiten.Image, s *engine.Session) {
	if s.Active() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(constant.ScreenWidth/2, 20)
		op.ColorScale.ScaleWithColor(colorText)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(screen, strconv.Itoa(s.Score), a.scoreFace, op)
	}

	info := fmt.Sprintf("Best %d  Run %d  %5.1f m/s", s.BestScore, s.Runs, a.game.BikeSpeed())
	if a.muter != nil && a.muter.Muted() {
		info += "  muted"
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(colorHUD)
	text.Draw(screen, info, a.smallFace, op)
}

func (a *App) drawGameOver(screen *ebiten.Image, s *engine.Session) {
	panel, button := PanelLayout()
	vector.DrawFilledRect(screen, float32(panel.Min.X), float32(panel.Min.Y),
		float32(panel.Dx()), float32(panel.Dy()), colorPanel, false)

	cx := float64(panel.Min.X+panel.Max.X) / 2
	title := &text.DrawOptions{}
	title.GeoM.Translate(cx, float64(panel.Min.Y)+40)
	title.ColorScale.ScaleWithColor(colorGameOver)
	title.PrimaryAlign = text.AlignCenter
	text.Draw(screen, "Game Over!", a.scoreFace, title)

	detail := &text.DrawOptions{}
	detail.GeoM.Translate(cx, float64(panel.Min.Y)+130)
	detail.ColorScale.ScaleWithColor(colorText)
	detail.PrimaryAlign = text.AlignCenter
	text.Draw(screen, fmt.Sprintf("%s - score %d - best %d", s.Reason, s.FinalScore, s.BestScore), a.smallFace, detail)

	bx, by := float32(button.Min.X), float32(button.Min.Y)
	bw, bh := float32(button.Dx()), float32(button.Dy())
	vector.DrawFilledRect(screen, bx, by, bw, bh, colorButton, false)
	vector.StrokeRect(screen, bx, by, bw, bh, 2, colorText, false)

	label := &text.DrawOptions{}
	label.GeoM.Translate(float64(button.Min.X+button.Max.X)/2, float64(button.Min.Y+button.Max.Y)/2)
	label.ColorScale.ScaleWithColor(colorText)
	label.PrimaryAlign = text.AlignCenter
	label.SecondaryAlign = text.AlignCenter
	text.Draw(screen, "Restart", a.smallFace, label)
}
