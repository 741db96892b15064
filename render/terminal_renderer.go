package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flip-rider/asset"
	"github.com/lixenwraith/flip-rider/bike"
	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/engine"
	"github.com/lixenwraith/flip-rider/terrain"
	"github.com/lixenwraith/flip-rider/vmath"
)

// Frame is the game state a renderer needs for one frame
type Frame struct {
	Terrain *terrain.Terrain
	Bike    bike.Pose
	Camera  vmath.Vec2
	Session engine.Session
	Speed   float64
	Holding bool // accelerate currently held
	Muted   bool
	Hint    string // status bar text
}

// FrameFromGame snapshots g for rendering
func FrameFromGame(g *engine.Game, holding bool, hint string) Frame {
	return Frame{
		Terrain: g.Terrain(),
		Bike:    g.BikePose(),
		Camera:  g.Camera().Center,
		Session: *g.Session(),
		Speed:   g.BikeSpeed(),
		Holding: holding,
		Hint:    hint,
	}
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	font   *asset.SplashFont
	width  int
	height int
	button Rect
}

// NewTerminalRenderer creates a renderer drawing to screen with font for the score digits
func NewTerminalRenderer(screen tcell.Screen, font *asset.SplashFont) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		font:   font,
	}
	r.Resize()
	return r
}

// Resize picks up the current screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(0, 0, r.width, r.height, ' ', defaultStyle)

	if r.height-constant.HUDRows-constant.StatusRows < constant.MinViewRows {
		r.drawTooSmall(defaultStyle)
		r.button = Rect{}
		r.screen.Show()
		return
	}

	proj := NewProjection(r.width, r.height, f.Camera)

	r.drawTerrain(proj, f.Terrain, defaultStyle)
	r.drawBike(proj, f.Bike, defaultStyle)
	r.drawScore(proj, f.Session.Score, defaultStyle)
	r.drawHUD(f, defaultStyle)
	r.drawStatusBar(f.Hint)

	if f.Session.Over {
		r.button = r.drawGameOver(f.Session, defaultStyle)
	} else {
		r.button = Rect{}
	}

	r.screen.Show()
}

// RestartButton returns the restart button drawn by the last frame; empty while the run is active
func (r *TerminalRenderer) RestartButton() Rect {
	return r.button
}

// drawTerrain draws the ground surface with slope glyphs and fills below it
func (r *TerminalRenderer) drawTerrain(p Projection, t *terrain.Terrain, defaultStyle tcell.Style) {
	if t == nil {
		return
	}
	surface := defaultStyle.Foreground(RgbTerrain)
	fill := defaultStyle.Foreground(RgbGroundFill)
	bottom := p.ViewTop + p.ViewRows

	for x := 0; x < p.Cols; x++ {
		wx := p.ColumnX(x)
		h, ok := t.HeightAt(wx)
		if !ok {
			continue
		}
		_, y := p.ToCell(vmath.V(wx, h))
		if y >= bottom {
			continue
		}

		glyph := '_'
		left, okL := t.HeightAt(wx - p.CellW/2)
		right, okR := t.HeightAt(wx + p.CellW/2)
		if okL && okR {
			// Rows per column; Y grows down so a rising surface has negative slope
			slope := (right - left) / p.CellH
			switch {
			case slope < -0.35:
				glyph = '/'
			case slope > 0.35:
				glyph = '\\'
			}
		}

		if p.InView(x, y) {
			r.screen.SetContent(x, y, glyph, nil, surface)
		}
		for fy := max(y+1, p.ViewTop); fy < bottom; fy++ {
			r.screen.SetContent(x, fy, '░', nil, fill)
		}
	}
}

// drawBike draws the frame then the wheels in front of it
func (r *TerminalRenderer) drawBike(p Projection, pose bike.Pose, defaultStyle tcell.Style) {
	frameStyle := defaultStyle.Foreground(RgbFrame)
	reach := math.Hypot(constant.FrameHalfWidth, constant.FrameHalfHeight)
	r.fillShape(p, pose.Pos, reach, func(w vmath.Vec2) bool {
		local := w.Sub(pose.Pos).Rotate(-pose.Angle)
		return math.Abs(local.X) <= constant.FrameHalfWidth && math.Abs(local.Y) <= constant.FrameHalfHeight
	}, '█', frameStyle)

	// Frame thinner than a row still gets one cell along its axis
	for _, t := range []float64{-1, -0.5, 0, 0.5, 1} {
		w := pose.Pos.Add(vmath.V(t*constant.FrameHalfWidth, 0).Rotate(pose.Angle))
		if x, y := p.ToCell(w); p.InView(x, y) {
			r.screen.SetContent(x, y, '█', nil, frameStyle)
		}
	}

	rear, front := bike.WheelCenters(pose)
	wheelStyle := defaultStyle.Foreground(RgbWheel)
	for _, c := range []vmath.Vec2{rear, front} {
		r.fillShape(p, c, constant.WheelRadius, func(w vmath.Vec2) bool {
			return w.DistSq(c) <= constant.WheelRadius*constant.WheelRadius
		}, 'O', wheelStyle)
	}
}

// fillShape sets every in-view cell whose centre lies inside a shape bounded by a circle around c
func (r *TerminalRenderer) fillShape(p Projection, c vmath.Vec2, reach float64, inside func(vmath.Vec2) bool, ch rune, style tcell.Style) {
	x0, y0 := p.ToCell(c.Sub(vmath.V(reach, reach)))
	x1, y1 := p.ToCell(c.Add(vmath.V(reach, reach)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !p.InView(x, y) || !inside(p.CellCenter(x, y)) {
				continue
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawScore draws the score in splash digits centred at the top of the view
func (r *TerminalRenderer) drawScore(p Projection, score int, defaultStyle tcell.Style) {
	if r.font == nil {
		return
	}
	text := strconv.Itoa(score)
	width := r.font.TextWidth(text, constant.SplashCharSpacing)
	startX := (r.width - width) / 2
	startY := p.ViewTop + 1
	style := defaultStyle.Foreground(RgbScore)

	for i, ch := range text {
		glyph := r.font.Glyph(ch)
		gx := startX + i*(r.font.Width+constant.SplashCharSpacing)
		for row := 0; row < r.font.Height; row++ {
			for col := 0; col < r.font.Width; col++ {
				if !asset.Set(glyph, col, row) {
					continue
				}
				if x, y := gx+col, startY+row; p.InView(x, y) {
					r.screen.SetContent(x, y, '█', nil, style)
				}
			}
		}
	}
}

// drawHUD draws the top line: score, best, run number, speed
func (r *TerminalRenderer) drawHUD(f Frame, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbHUDText)
	s := f.Session
	left := fmt.Sprintf(" Score %d  Best %d  Run %d", s.Score, s.BestScore, s.Runs)
	r.drawText(0, 0, left, style)

	right := fmt.Sprintf("%5.1f m/s ", f.Speed)
	if f.Muted {
		right = "muted  " + right
	}
	if f.Holding {
		style = defaultStyle.Foreground(RgbHUDAccent).Bold(true)
		right = "▶ " + right
	}
	r.drawText(r.width-len([]rune(right)), 0, right, style)
}

// drawStatusBar draws the key hint line at the bottom
func (r *TerminalRenderer) drawStatusBar(hint string) {
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	y := r.height - constant.StatusRows
	r.fill(0, y, r.width, constant.StatusRows, ' ', style)
	r.drawText(1, y, hint, style)
}

func (r *TerminalRenderer) drawTooSmall(defaultStyle tcell.Style) {
	msg := fmt.Sprintf("terminal too small: need %d rows", constant.MinViewRows+constant.HUDRows+constant.StatusRows)
	r.drawText(0, 0, msg, defaultStyle.Foreground(RgbGameOver))
}

// drawText writes s from (x, y), clipped to the screen
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func (r *TerminalRenderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if col >= 0 && col < r.width && row >= 0 && row < r.height {
				r.screen.SetContent(col, row, ch, nil, style)
			}
		}
	}
}
