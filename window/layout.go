package window

import (
	"image"

	"github.com/lixenwraith/flip-rider/constant"
)

// PanelLayout centres the game-over panel and its restart button in the logical screen
func PanelLayout() (panel, button image.Rectangle) {
	px := (constant.ScreenWidth - constant.PanelWidth) / 2
	py := (constant.ScreenHeight - constant.PanelHeight) / 2
	panel = image.Rect(px, py, px+constant.PanelWidth, py+constant.PanelHeight)

	bx := px + (constant.PanelWidth-constant.PanelButtonWidth)/2
	by := py + constant.PanelHeight - constant.PanelButtonHeight - 40
	button = image.Rect(bx, by, bx+constant.PanelButtonWidth, by+constant.PanelButtonHeight)
	return panel, button
}

// HitButton reports whether the logical cursor position lies on the restart button
func HitButton(x, y int) bool {
	_, button := PanelLayout()
	return image.Pt(x, y).In(button)
}
