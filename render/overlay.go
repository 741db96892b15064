package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/engine"
)

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) is inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// OverlayLayout returns the panel and restart button rectangles centred on a cols×rows screen
func OverlayLayout(cols, rows int) (panel, button Rect) {
	panel = Rect{
		X: (cols - constant.OverlayWidth) / 2,
		Y: (rows - constant.OverlayHeight) / 2,
		W: constant.OverlayWidth,
		H: constant.OverlayHeight,
	}
	button = Rect{
		X: panel.X + (panel.W-constant.OverlayButtonWidth)/2,
		Y: panel.Y + panel.H - constant.OverlayButtonHeight - 1,
		W: constant.OverlayButtonWidth,
		H: constant.OverlayButtonHeight,
	}
	return panel, button
}

// drawGameOver draws the game-over panel and returns the restart button rectangle
func (r *TerminalRenderer) drawGameOver(s engine.Session, defaultStyle tcell.Style) Rect {
	panel, button := OverlayLayout(r.width, r.height)

	panelStyle := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayRim)
	r.fill(panel.X, panel.Y, panel.W, panel.H, ' ', panelStyle)
	r.drawBox(panel, panelStyle)

	title := "Game Over!"
	r.drawCentered(panel, panel.Y+1, title, panelStyle.Foreground(RgbGameOver).Bold(true))

	detail := fmt.Sprintf("%s - score %d", s.Reason, s.FinalScore)
	r.drawCentered(panel, panel.Y+2, detail, panelStyle.Foreground(RgbHUDText))
	best := fmt.Sprintf("best %d", s.BestScore)
	r.drawCentered(panel, panel.Y+3, best, panelStyle.Foreground(RgbHUDText))

	buttonStyle := tcell.StyleDefault.Background(RgbButtonBg).Foreground(RgbButtonText)
	r.fill(button.X, button.Y, button.W, button.H, ' ', buttonStyle)
	r.drawBox(button, buttonStyle.Foreground(RgbOverlayRim))
	r.drawCentered(button, button.Y+button.H/2, "Restart", buttonStyle.Bold(true))

	return button
}

// drawBox draws a single-line border along the rectangle edge
func (r *TerminalRenderer) drawBox(b Rect, style tcell.Style) {
	if b.W < 2 || b.H < 2 {
		return
	}
	right, bottom := b.X+b.W-1, b.Y+b.H-1
	for x := b.X + 1; x < right; x++ {
		r.setClipped(x, b.Y, '─', style)
		r.setClipped(x, bottom, '─', style)
	}
	for y := b.Y + 1; y < bottom; y++ {
		r.setClipped(b.X, y, '│', style)
		r.setClipped(right, y, '│', style)
	}
	r.setClipped(b.X, b.Y, '┌', style)
	r.setClipped(right, b.Y, '┐', style)
	r.setClipped(b.X, bottom, '└', style)
	r.setClipped(right, bottom, '┘', style)
}

func (r *TerminalRenderer) drawCentered(b Rect, y int, s string, style tcell.Style) {
	n := len([]rune(s))
	r.drawText(b.X+(b.W-n)/2, y, s, style)
}

func (r *TerminalRenderer) setClipped(x, y int, ch rune, style tcell.Style) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}
