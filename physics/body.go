package physics

import (
	"errors"
	"fmt"

	"github.com/ByteArena/box2d"

	"github.com/lixenwraith/flip-rider/vmath"
)

// ErrChainVertices is returned when chain vertices are too close or not ordered
var ErrChainVertices = errors.New("invalid chain vertices")

// minVertexDistSq mirrors box2d's linear slop check; closer vertices trip an assertion inside CreateChain
const minVertexDistSq = box2d.B2_linearSlop * box2d.B2_linearSlop

// Body is a rigid body owned by a World
type Body struct {
	id   BodyID
	body *box2d.B2Body
}

func (b *Body) ID() BodyID { return b.id }

// AttachBox adds a box fixture with half extents half, centred on the body origin
func (b *Body) AttachBox(half vmath.Vec2, mat Material, role ShapeRole) {
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(half.X, half.Y)
	b.attach(&shape, mat, role)
}

// AttachCircle adds a circle fixture centred at center in body space
func (b *Body) AttachCircle(radius float64, center vmath.Vec2, mat Material, role ShapeRole) {
	shape := box2d.MakeB2CircleShape()
	shape.M_radius = radius
	shape.M_p.Set(center.X, center.Y)
	b.attach(&shape, mat, role)
}

func (b *Body) attach(shape box2d.B2ShapeInterface, mat Material, role ShapeRole) *box2d.B2Fixture {
	def := box2d.MakeB2FixtureDef()
	def.Shape = shape
	def.Density = mat.Density
	def.Friction = mat.Friction
	def.UserData = FixtureTag{Body: b.id, Role: role}
	return b.body.CreateFixtureFromDef(&def)
}

// ReplaceChain swaps every fixture of the body for one open chain through points
// Vertices are validated before anything is destroyed, so a failed call leaves the old shape in place.
// Fewer than two points removes the old shape and creates nothing.
func (b *Body) ReplaceChain(points []vmath.Vec2, mat Material, role ShapeRole) error {
	var vertices []box2d.B2Vec2
	if len(points) >= 2 {
		vertices = make([]box2d.B2Vec2, len(points))
		for i, p := range points {
			if i > 0 && p.DistSq(points[i-1]) <= minVertexDistSq {
				return fmt.Errorf("%w: vertex %d too close to %d", ErrChainVertices, i, i-1)
			}
			vertices[i] = b2Vec(p)
		}
	}

	b.destroyFixtures()

	if vertices == nil {
		return nil
	}
	chain := box2d.MakeB2ChainShape()
	chain.CreateChain(vertices, len(vertices))
	b.attach(&chain, mat, role)
	return nil
}

func (b *Body) destroyFixtures() {
	f := b.body.GetFixtureList()
	for f != nil {
		next := f.GetNext()
		b.body.DestroyFixture(f)
		f = next
	}
}

// Fixtures returns the tags of all attached fixtures
func (b *Body) Fixtures() []FixtureTag {
	var tags []FixtureTag
	for f := b.body.GetFixtureList(); f != nil; f = f.GetNext() {
		tags = append(tags, tagOf(f))
	}
	return tags
}

// Contacts returns the body's current contact pairs, touching or not
func (b *Body) Contacts() []Contact {
	var contacts []Contact
	for edge := b.body.GetContactList(); edge != nil; edge = edge.Next {
		c := edge.Contact
		contacts = append(contacts, Contact{
			A:        tagOf(c.GetFixtureA()),
			B:        tagOf(c.GetFixtureB()),
			Touching: c.IsTouching(),
		})
	}
	return contacts
}

func tagOf(f *box2d.B2Fixture) FixtureTag {
	if f == nil {
		return FixtureTag{}
	}
	tag, _ := f.GetUserData().(FixtureTag)
	return tag
}

// Kinematic state

func (b *Body) Position() vmath.Vec2 { return fromB2(b.body.GetPosition()) }
func (b *Body) Angle() float64       { return b.body.GetAngle() }

func (b *Body) LinearVelocity() vmath.Vec2     { return fromB2(b.body.GetLinearVelocity()) }
func (b *Body) SetLinearVelocity(v vmath.Vec2) { b.body.SetLinearVelocity(b2Vec(v)) }

func (b *Body) AngularVelocity() float64     { return b.body.GetAngularVelocity() }
func (b *Body) SetAngularVelocity(w float64) { b.body.SetAngularVelocity(w) }

// ApplyTorque wakes the body and accumulates torque for the next step
func (b *Body) ApplyTorque(torque float64) {
	b.body.ApplyTorque(torque, true)
}

// ApplyForceToCenter wakes the body and accumulates force for the next step
func (b *Body) ApplyForceToCenter(f vmath.Vec2) {
	b.body.ApplyForceToCenter(b2Vec(f), true)
}

// SetTransform teleports the body
func (b *Body) SetTransform(pos vmath.Vec2, angle float64) {
	b.body.SetTransform(b2Vec(pos), angle)
}
