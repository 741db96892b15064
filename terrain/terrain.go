package terrain

import (
	"fmt"
	"log"
	"sort"

	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/vmath"
)

// Boundary is the collision shape that mirrors the point sequence
// ReplaceChain must swap the whole shape in one call; fewer than two points means no shape
type Boundary interface {
	ReplaceChain(points []vmath.Vec2) error
}

// Config holds the generation parameters in world units
type Config struct {
	SegmentLength float64
	Step          float64
	Threshold     float64
	BaseY         float64
	InitialLength float64
}

// DefaultConfig returns the standard generation parameters
func DefaultConfig() Config {
	return Config{
		SegmentLength: constant.SegmentLength,
		Step:          constant.TerrainStep,
		Threshold:     constant.GenerateThreshold,
		BaseY:         constant.TerrainBaseY,
		InitialLength: constant.InitialTerrainLength,
	}
}

// Segment records one generated batch
type Segment struct {
	StartX float64
	Kind   Waveform
}

// Terrain owns the ground point sequence and keeps its boundary in sync
type Terrain struct {
	cfg      Config
	boundary Boundary
	picker   Picker

	points   []vmath.Vec2 // physics units, strictly increasing X
	frontier float64      // world units
	segments []Segment
}

// New generates the initial terrain up to cfg.InitialLength and builds the boundary once
func New(cfg Config, boundary Boundary, picker Picker) (*Terrain, error) {
	if cfg.SegmentLength <= 0 || cfg.Step < constant.MinTerrainStep {
		return nil, fmt.Errorf("terrain: segment length %v must be positive and step %v at least %v",
			cfg.SegmentLength, cfg.Step, constant.MinTerrainStep)
	}

	t := &Terrain{
		cfg:      cfg,
		boundary: boundary,
		picker:   picker,
	}

	for t.frontier < cfg.InitialLength {
		t.appendSegment()
	}

	if err := t.rebuild(); err != nil {
		return nil, err
	}
	return t, nil
}

// ExtendIfNeeded appends one segment when riderX (world units) is within the threshold of the frontier
// Returns true when a segment was added; on error the terrain is left as it was
func (t *Terrain) ExtendIfNeeded(riderX float64) (bool, error) {
	if riderX <= t.frontier-t.cfg.Threshold {
		return false, nil
	}

	nPoints, nSegments, frontier := len(t.points), len(t.segments), t.frontier
	seg := t.appendSegment()
	if err := t.rebuild(); err != nil {
		t.points = t.points[:nPoints]
		t.segments = t.segments[:nSegments]
		t.frontier = frontier
		return false, err
	}

	log.Printf("terrain: extended %s segment at %.0f, frontier %.0f, %d points",
		seg.Kind, seg.StartX, t.frontier, len(t.points))
	return true, nil
}

// appendSegment generates one segment from the frontier, anchored at the last known height
func (t *Terrain) appendSegment() Segment {
	seg := Segment{StartX: t.frontier, Kind: Pick(t.picker)}
	endX := t.frontier + t.cfg.SegmentLength

	startY := t.cfg.BaseY
	if n := len(t.points); n > 0 {
		startY = t.points[n-1].Y * constant.PixelsPerMeter
	}

	for _, p := range GenerateSegment(seg.StartX, endX, t.cfg.Step, seg.Kind, startY) {
		// Seam samples at or just past the last point would collapse the chain
		if n := len(t.points); n > 0 && p.X-t.points[n-1].X < constant.MinVertexSpacing {
			continue
		}
		t.points = append(t.points, p)
	}

	t.frontier = endX
	t.segments = append(t.segments, seg)
	return seg
}

// rebuild replaces the boundary with the full accumulated sequence
func (t *Terrain) rebuild() error {
	if t.boundary == nil {
		return nil
	}
	if err := t.boundary.ReplaceChain(t.points); err != nil {
		return fmt.Errorf("terrain: rebuild boundary: %w", err)
	}
	return nil
}

// Frontier returns the rightmost generated X in world units
func (t *Terrain) Frontier() float64 { return t.frontier }

// Points returns the full sequence in physics units; callers must not modify it
func (t *Terrain) Points() []vmath.Vec2 { return t.points }

// Segments returns the generation history
func (t *Terrain) Segments() []Segment { return t.segments }

// Visible returns the points whose world X lies within [x0, x1], plus one neighbour
// on each side so a polyline spans the whole window
func (t *Terrain) Visible(x0, x1 float64) []vmath.Vec2 {
	lo := x0 / constant.PixelsPerMeter
	hi := x1 / constant.PixelsPerMeter

	i := sort.Search(len(t.points), func(i int) bool { return t.points[i].X >= lo })
	j := sort.Search(len(t.points), func(i int) bool { return t.points[i].X > hi })
	if i > 0 {
		i--
	}
	if j < len(t.points) {
		j++
	}
	return t.points[i:j]
}

// HeightAt interpolates the ground height at world X; ok is false outside the generated range
func (t *Terrain) HeightAt(x float64) (float64, bool) {
	px := x / constant.PixelsPerMeter
	n := len(t.points)
	if n == 0 || px < t.points[0].X || px > t.points[n-1].X {
		return 0, false
	}

	j := sort.Search(n, func(i int) bool { return t.points[i].X >= px })
	if t.points[j].X == px || j == 0 {
		return t.points[j].Y * constant.PixelsPerMeter, true
	}

	a, b := t.points[j-1], t.points[j]
	f := (px - a.X) / (b.X - a.X)
	return vmath.Lerp(a.Y, b.Y, f) * constant.PixelsPerMeter, true
}
