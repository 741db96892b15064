package engine

import (
	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/physics"
	"github.com/lixenwraith/flip-rider/vmath"
)

// groundBoundary rebuilds the static ground body as one chain tagged RoleGround
type groundBoundary struct {
	body *physics.Body
}

func (g groundBoundary) ReplaceChain(points []vmath.Vec2) error {
	return g.body.ReplaceChain(points, physics.Material{Friction: constant.GroundFriction}, physics.RoleGround)
}
