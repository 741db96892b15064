package engine

import "github.com/lixenwraith/flip-rider/physics"

// Verdict is the outcome of one game-over check
type Verdict struct {
	Over   bool
	Reason EndReason
}

// CheckGameOver evaluates the bicycle's contacts and height for one tick
// A touching frame/ground contact ends the run before the fall check; wheel contacts never do.
// bikeY and limit are world units with Y growing down.
func CheckGameOver(contacts []physics.Contact, bike, ground physics.BodyID, bikeY, limit float64) Verdict {
	for _, c := range contacts {
		if !c.Touching {
			continue
		}
		own, other, ok := c.Split(bike)
		if !ok || other.Body != ground {
			continue
		}
		if own.Role == physics.RoleFrame {
			return Verdict{Over: true, Reason: ReasonFrameHit}
		}
	}

	if bikeY > limit {
		return Verdict{Over: true, Reason: ReasonFell}
	}
	return Verdict{}
}
