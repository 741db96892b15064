package bike

import (
	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/physics"
	"github.com/lixenwraith/flip-rider/vmath"
)

// Body is the part of a rigid body the bicycle drives
// *physics.Body satisfies it
type Body interface {
	Position() vmath.Vec2
	Angle() float64
	LinearVelocity() vmath.Vec2
	SetLinearVelocity(v vmath.Vec2)
	AngularVelocity() float64
	SetAngularVelocity(w float64)
	ApplyTorque(torque float64)
	ApplyForceToCenter(f vmath.Vec2)
	SetTransform(pos vmath.Vec2, angle float64)
}

// Dynamics holds the input response tunables
type Dynamics struct {
	MaxSpeed           float64
	AccelerationForce  float64
	RotationTorque     float64
	MaxAngularVelocity float64
	AngularFriction    float64
	AirborneSpeed      float64
}

// DefaultDynamics returns the standard tunables
func DefaultDynamics() Dynamics {
	return Dynamics{
		MaxSpeed:           constant.MaxSpeed,
		AccelerationForce:  constant.AccelerationForce,
		RotationTorque:     constant.RotationTorque,
		MaxAngularVelocity: constant.MaxAngularVelocity,
		AngularFriction:    constant.AngularFriction,
		AirborneSpeed:      constant.AirborneSpeed,
	}
}

// Pose is the bicycle placement in world units for renderers
type Pose struct {
	Pos   vmath.Vec2
	Angle float64
}

// Bicycle drives a rigid body from rider input and counts flips
type Bicycle struct {
	body    Body
	dyn     Dynamics
	spawn   vmath.Vec2 // physics units
	tracker RotationTracker
}

// New wraps body; spawn is the reset position in world units
func New(body Body, dyn Dynamics, spawn vmath.Vec2) *Bicycle {
	b := &Bicycle{
		body:  body,
		dyn:   dyn,
		spawn: spawn.Scale(1 / constant.PixelsPerMeter),
	}
	b.tracker.Reset(body.Angle())
	return b
}

// Spawn creates the bicycle body in w with a frame and two wheels, and wraps it
func Spawn(w *physics.World, dyn Dynamics) (*Bicycle, *physics.Body) {
	const s = 1 / constant.PixelsPerMeter

	spawn := vmath.V(constant.BikeSpawnX, constant.BikeSpawnY)
	body := w.NewDynamicBody(spawn.Scale(s), 0)

	body.AttachBox(
		vmath.V(constant.FrameHalfWidth*s, constant.FrameHalfHeight*s),
		physics.Material{Density: constant.FrameDensity, Friction: constant.FrameFriction},
		physics.RoleFrame,
	)

	wheel := physics.Material{Density: constant.WheelDensity, Friction: constant.WheelFriction}
	for _, side := range []float64{1, -1} {
		body.AttachCircle(
			constant.WheelRadius*s,
			vmath.V(side*constant.WheelOffsetX*s, constant.WheelOffsetY*s),
			wheel,
			physics.RoleWheel,
		)
	}

	return New(body, dyn, spawn), body
}

// ApplyInput applies one tick of rider input
// Held: backward torque while airborne (angular velocity floored), forward force below max speed.
// Released: angular velocity decays geometrically.
func (b *Bicycle) ApplyInput(accelerate bool) {
	if !accelerate {
		b.body.SetAngularVelocity(b.body.AngularVelocity() * b.dyn.AngularFriction)
		return
	}

	vel := b.body.LinearVelocity()
	if abs(vel.Y) > b.dyn.AirborneSpeed {
		b.body.ApplyTorque(-b.dyn.RotationTorque)
		if b.body.AngularVelocity() < -b.dyn.MaxAngularVelocity {
			b.body.SetAngularVelocity(-b.dyn.MaxAngularVelocity)
		}
	}
	if vel.X < b.dyn.MaxSpeed {
		b.body.ApplyForceToCenter(vmath.V(b.dyn.AccelerationForce, 0))
	}
}

// StepRotation samples the body orientation; true when a full rotation completed this tick
func (b *Bicycle) StepRotation() bool {
	return b.tracker.Step(b.body.Angle())
}

// Reset returns the body to the spawn pose at rest and clears rotation tracking
func (b *Bicycle) Reset() {
	b.body.SetTransform(b.spawn, 0)
	b.body.SetLinearVelocity(vmath.Vec2{})
	b.body.SetAngularVelocity(0)
	b.tracker.Reset(0)
}

// Pose returns position (world units) and orientation
func (b *Bicycle) Pose() Pose {
	return Pose{
		Pos:   b.body.Position().Scale(constant.PixelsPerMeter),
		Angle: b.body.Angle(),
	}
}

// Rotation returns the accumulated rotation since the last full turn
func (b *Bicycle) Rotation() float64 {
	return b.tracker.Accumulated()
}

// Speed returns the forward speed in physics units per second
func (b *Bicycle) Speed() float64 {
	return b.body.LinearVelocity().X
}

// WheelCenters returns rear and front wheel centres in world units for a pose
func WheelCenters(p Pose) (rear, front vmath.Vec2) {
	rear = p.Pos.Add(vmath.V(-constant.WheelOffsetX, constant.WheelOffsetY).Rotate(p.Angle))
	front = p.Pos.Add(vmath.V(constant.WheelOffsetX, constant.WheelOffsetY).Rotate(p.Angle))
	return rear, front
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
