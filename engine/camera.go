package engine

import (
	"github.com/lixenwraith/flip-rider/vmath"
)

// Camera is the view centre in world units, eased toward a target each tick
type Camera struct {
	Center    vmath.Vec2
	smoothing float64
}

func newCamera(center vmath.Vec2, smoothing float64) Camera {
	return Camera{Center: center, smoothing: smoothing}
}

func (c *Camera) follow(target vmath.Vec2) {
	c.Center = c.Center.Add(target.Sub(c.Center).Scale(c.smoothing))
}

// Origin returns the world position at the top-left corner of a view of the given size
func (c Camera) Origin(viewW, viewH float64) vmath.Vec2 {
	return c.Center.Sub(vmath.V(viewW/2, viewH/2))
}
