package bike

import (
	"math"

	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/vmath"
)

// RotationTracker accumulates signed orientation change and reports full turns
type RotationTracker struct {
	last        float64
	accumulated float64
}

// Reset starts tracking from angle with an empty accumulator
func (r *RotationTracker) Reset(angle float64) {
	r.last = angle
	r.accumulated = 0
}

// Step folds in the current orientation and returns true when a full turn completes
// The accumulator is cleared on a full turn and stays within (-2π, 2π) otherwise
func (r *RotationTracker) Step(angle float64) bool {
	r.accumulated += vmath.WrapAngle(angle - r.last)
	r.last = angle

	if math.Abs(r.accumulated) >= vmath.TwoPi-constant.FullTurnEpsilon {
		r.accumulated = 0
		return true
	}
	return false
}

// Accumulated returns the rotation since the last full turn
func (r *RotationTracker) Accumulated() float64 {
	return r.accumulated
}
