package render

import (
	"math"

	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/vmath"
)

// Projection maps world units onto terminal cells
// The full world view height is fitted into the rows between the HUD and the status bar;
// cell width follows from the cell aspect ratio.
type Projection struct {
	Cols, Rows int // whole screen
	ViewTop    int // first world row
	ViewRows   int
	CellW      float64 // world units per column
	CellH      float64 // world units per row
	Origin     vmath.Vec2
}

// NewProjection fits the view around center for a cols×rows screen
func NewProjection(cols, rows int, center vmath.Vec2) Projection {
	p := Projection{
		Cols:     cols,
		Rows:     rows,
		ViewTop:  constant.HUDRows,
		ViewRows: rows - constant.HUDRows - constant.StatusRows,
	}
	if p.ViewRows < 1 {
		p.ViewRows = 1
	}
	p.CellH = constant.ScreenHeight / float64(p.ViewRows)
	p.CellW = p.CellH / constant.CellAspect

	viewW := float64(cols) * p.CellW
	p.Origin = center.Sub(vmath.V(viewW/2, constant.ScreenHeight/2))
	return p
}

// ToCell returns the screen cell containing world point w
func (p Projection) ToCell(w vmath.Vec2) (x, y int) {
	x = int(math.Floor((w.X - p.Origin.X) / p.CellW))
	y = p.ViewTop + int(math.Floor((w.Y-p.Origin.Y)/p.CellH))
	return x, y
}

// ColumnX returns the world X at the centre of screen column x
func (p Projection) ColumnX(x int) float64 {
	return p.Origin.X + (float64(x)+0.5)*p.CellW
}

// CellCenter returns the world point at the centre of screen cell (x, y)
func (p Projection) CellCenter(x, y int) vmath.Vec2 {
	return vmath.V(p.ColumnX(x), p.Origin.Y+(float64(y-p.ViewTop)+0.5)*p.CellH)
}

// InView reports whether (x, y) is inside the world area of the screen
func (p Projection) InView(x, y int) bool {
	return x >= 0 && x < p.Cols && y >= p.ViewTop && y < p.ViewTop+p.ViewRows
}

// ViewSpan returns the world X range covered by the screen
func (p Projection) ViewSpan() (x0, x1 float64) {
	return p.Origin.X, p.Origin.X + float64(p.Cols)*p.CellW
}
