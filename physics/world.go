package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/lixenwraith/flip-rider/vmath"
)

// StepConfig is the fixed advance applied by every Step call
type StepConfig struct {
	TimeStep           float64
	VelocityIterations int
	PositionIterations int
}

// World wraps a box2d world and assigns identities to the bodies it creates
type World struct {
	world  box2d.B2World
	step   StepConfig
	nextID BodyID
	steps  uint64
}

// NewWorld creates an empty world with the given gravity (physics units, Y down)
func NewWorld(gravity vmath.Vec2, step StepConfig) *World {
	return &World{
		world: box2d.MakeB2World(b2Vec(gravity)),
		step:  step,
	}
}

// Step advances the simulation by one fixed increment
func (w *World) Step() {
	w.world.Step(w.step.TimeStep, w.step.VelocityIterations, w.step.PositionIterations)
	w.steps++
}

// Steps returns the number of completed steps
func (w *World) Steps() uint64 {
	return w.steps
}

// NewDynamicBody creates a simulated body at pos (physics units)
func (w *World) NewDynamicBody(pos vmath.Vec2, angle float64) *Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_dynamicBody
	def.Position.Set(pos.X, pos.Y)
	def.Angle = angle
	return w.createBody(&def)
}

// NewStaticBody creates an immovable body at the origin
func (w *World) NewStaticBody() *Body {
	def := box2d.MakeB2BodyDef()
	return w.createBody(&def)
}

func (w *World) createBody(def *box2d.B2BodyDef) *Body {
	w.nextID++
	return &Body{
		id:   w.nextID,
		body: w.world.CreateBody(def),
	}
}

func b2Vec(v vmath.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func fromB2(v box2d.B2Vec2) vmath.Vec2 {
	return vmath.Vec2{X: v.X, Y: v.Y}
}
