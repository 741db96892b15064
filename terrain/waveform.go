package terrain

import (
	"math"

	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/vmath"
)

// Waveform selects the height function of a segment
type Waveform uint8

const (
	Wavy Waveform = iota
	Hilly
	Steep

	// WaveformCount is the number of kinds a segment is drawn from
	WaveformCount = 3
)

func (w Waveform) String() string {
	switch w {
	case Wavy:
		return "wavy"
	case Hilly:
		return "hilly"
	case Steep:
		return "steep"
	default:
		return "flat"
	}
}

// Offset returns the height offset at distance t from the segment start, world units
// Unknown kinds are flat
func (w Waveform) Offset(t float64) float64 {
	switch w {
	case Wavy:
		return constant.WavyAmplitude * math.Sin(constant.WavyFrequency*t)
	case Hilly:
		return constant.HillyAmplitude * math.Cos(constant.HillyFrequency*t)
	case Steep:
		return constant.SteepAmplitude * math.Sin(constant.SteepFrequency*t)
	default:
		return 0
	}
}

// Picker supplies the uniform choice of waveform for each new segment
type Picker interface {
	Intn(n int) int
}

// Pick draws a waveform uniformly
func Pick(p Picker) Waveform {
	return Waveform(p.Intn(WaveformCount))
}

// GenerateSegment samples heights from startX to endX inclusive every step world units
// anchored at startY, and returns them in physics units. No side effects.
func GenerateSegment(startX, endX, step float64, kind Waveform, startY float64) []vmath.Vec2 {
	if step <= 0 || endX < startX {
		return nil
	}

	// Integer indexing keeps spacing exact over long segments
	n := int(math.Floor((endX-startX)/step)) + 1
	points := make([]vmath.Vec2, 0, n)
	for i := 0; i < n; i++ {
		x := startX + float64(i)*step
		if x > endX {
			break
		}
		y := startY + kind.Offset(x-startX)
		points = append(points, vmath.V(x/constant.PixelsPerMeter, y/constant.PixelsPerMeter))
	}
	return points
}
