package bike

import (
	"math"
	"testing"

	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/physics"
	"github.com/lixenwraith/flip-rider/vmath"
)

// fakeBody records applied forces without simulating
type fakeBody struct {
	pos     vmath.Vec2
	angle   float64
	vel     vmath.Vec2
	angVel  float64
	torques []float64
	forces  []vmath.Vec2
}

func (f *fakeBody) Position() vmath.Vec2            { return f.pos }
func (f *fakeBody) Angle() float64                  { return f.angle }
func (f *fakeBody) LinearVelocity() vmath.Vec2      { return f.vel }
func (f *fakeBody) SetLinearVelocity(v vmath.Vec2)  { f.vel = v }
func (f *fakeBody) AngularVelocity() float64        { return f.angVel }
func (f *fakeBody) SetAngularVelocity(w float64)    { f.angVel = w }
func (f *fakeBody) ApplyTorque(t float64)           { f.torques = append(f.torques, t) }
func (f *fakeBody) ApplyForceToCenter(v vmath.Vec2) { f.forces = append(f.forces, v) }
func (f *fakeBody) SetTransform(p vmath.Vec2, a float64) {
	f.pos = p
	f.angle = a
}

func newTestBike(body *fakeBody) *Bicycle {
	return New(body, DefaultDynamics(), vmath.V(constant.BikeSpawnX, constant.BikeSpawnY))
}

func TestApplyInputGroundedAccelerates(t *testing.T) {
	body := &fakeBody{vel: vmath.V(3, 0.1)}
	b := newTestBike(body)

	b.ApplyInput(true)

	if len(body.torques) != 0 {
		t.Errorf("torque applied while grounded: %v", body.torques)
	}
	if len(body.forces) != 1 || body.forces[0] != vmath.V(constant.AccelerationForce, 0) {
		t.Errorf("forces = %v, want one forward force", body.forces)
	}
}

func TestApplyInputAirborneRotates(t *testing.T) {
	body := &fakeBody{vel: vmath.V(5, -2), angVel: -1}
	b := newTestBike(body)

	b.ApplyInput(true)

	if len(body.torques) != 1 || body.torques[0] != -constant.RotationTorque {
		t.Errorf("torques = %v, want one backward torque", body.torques)
	}
	if body.angVel != -1 {
		t.Errorf("angular velocity changed without exceeding floor: %v", body.angVel)
	}
}

func TestApplyInputClampsAngularVelocity(t *testing.T) {
	body := &fakeBody{vel: vmath.V(5, 3), angVel: -9}
	b := newTestBike(body)

	b.ApplyInput(true)

	if body.angVel != -constant.MaxAngularVelocity {
		t.Errorf("angular velocity = %v, want floor %v", body.angVel, -constant.MaxAngularVelocity)
	}
}

func TestApplyInputSpeedCap(t *testing.T) {
	body := &fakeBody{vel: vmath.V(constant.MaxSpeed, 0)}
	b := newTestBike(body)

	b.ApplyInput(true)

	if len(body.forces) != 0 {
		t.Errorf("force applied at max speed: %v", body.forces)
	}
}

func TestApplyInputReleasedDecays(t *testing.T) {
	body := &fakeBody{vel: vmath.V(5, 3), angVel: 4}
	b := newTestBike(body)

	b.ApplyInput(false)
	b.ApplyInput(false)

	want := 4 * constant.AngularFriction * constant.AngularFriction
	if math.Abs(body.angVel-want) > 1e-12 {
		t.Errorf("angular velocity = %v, want %v", body.angVel, want)
	}
	if len(body.forces) != 0 || len(body.torques) != 0 {
		t.Error("released input should not apply force or torque")
	}
}

func TestStepRotationCountsFlips(t *testing.T) {
	body := &fakeBody{}
	b := newTestBike(body)

	flips := 0
	const steps = 90
	for i := 1; i <= 3*steps; i++ {
		body.angle = -float64(i) * vmath.TwoPi / steps
		if b.StepRotation() {
			flips++
		}
	}
	if flips != 3 {
		t.Errorf("expected 3 backflips, got %d", flips)
	}
}

func TestResetRestoresSpawn(t *testing.T) {
	body := &fakeBody{pos: vmath.V(50, 2), angle: 2, vel: vmath.V(4, 4), angVel: 3}
	b := newTestBike(body)
	body.angle = 3.5
	b.StepRotation()

	b.Reset()

	want := vmath.V(constant.BikeSpawnX, constant.BikeSpawnY).Scale(1 / constant.PixelsPerMeter)
	if body.pos != want || body.angle != 0 {
		t.Errorf("pose after reset = %v/%v", body.pos, body.angle)
	}
	if body.vel != (vmath.Vec2{}) || body.angVel != 0 {
		t.Errorf("velocity after reset = %v/%v", body.vel, body.angVel)
	}
	if b.Rotation() != 0 {
		t.Errorf("rotation after reset = %v", b.Rotation())
	}
}

func TestPoseWorldUnits(t *testing.T) {
	body := &fakeBody{pos: vmath.V(10, 5), angle: 0.5}
	b := newTestBike(body)

	p := b.Pose()
	if p.Pos != vmath.V(300, 150) || p.Angle != 0.5 {
		t.Errorf("Pose = %+v", p)
	}
}

func TestWheelCenters(t *testing.T) {
	rear, front := WheelCenters(Pose{Pos: vmath.V(100, 100)})
	if rear != vmath.V(100-constant.WheelOffsetX, 100+constant.WheelOffsetY) {
		t.Errorf("rear = %v", rear)
	}
	if front != vmath.V(100+constant.WheelOffsetX, 100+constant.WheelOffsetY) {
		t.Errorf("front = %v", front)
	}

	// Upside down swaps sides and flips the offset
	rear, _ = WheelCenters(Pose{Pos: vmath.V(0, 0), Angle: math.Pi})
	if math.Abs(rear.X-constant.WheelOffsetX) > 1e-9 || math.Abs(rear.Y+constant.WheelOffsetY) > 1e-9 {
		t.Errorf("rear upside down = %v", rear)
	}
}

func TestSpawnBuildsTaggedBody(t *testing.T) {
	w := physics.NewWorld(vmath.V(0, constant.Gravity), physics.StepConfig{
		TimeStep:           constant.PhysicsTimeStep,
		VelocityIterations: constant.VelocityIterations,
		PositionIterations: constant.PositionIterations,
	})
	b, body := Spawn(w, DefaultDynamics())

	counts := make(map[physics.ShapeRole]int)
	for _, tag := range body.Fixtures() {
		counts[tag.Role]++
	}
	if counts[physics.RoleFrame] != 1 || counts[physics.RoleWheel] != 2 {
		t.Errorf("role counts = %v", counts)
	}

	p := b.Pose()
	if math.Abs(p.Pos.X-constant.BikeSpawnX) > 1e-9 || math.Abs(p.Pos.Y-constant.BikeSpawnY) > 1e-9 {
		t.Errorf("spawn pose = %+v", p)
	}
}
