package physics

// BodyID identifies a body created by a World; zero is never assigned
type BodyID uint32

// ShapeRole tags a collision shape with what it represents
type ShapeRole uint8

const (
	RoleNone ShapeRole = iota
	RoleFrame
	RoleWheel
	RoleGround
)

func (r ShapeRole) String() string {
	switch r {
	case RoleFrame:
		return "frame"
	case RoleWheel:
		return "wheel"
	case RoleGround:
		return "ground"
	default:
		return "none"
	}
}

// FixtureTag is attached as user data to every fixture the World creates
type FixtureTag struct {
	Body BodyID
	Role ShapeRole
}

// Material holds the per-fixture surface parameters
type Material struct {
	Density  float64
	Friction float64
}

// Contact is a snapshot of one contact pair involving a body
type Contact struct {
	A, B     FixtureTag
	Touching bool
}

// Split returns the fixture belonging to id and the opposing fixture
// ok is false when id is on neither side
func (c Contact) Split(id BodyID) (own, other FixtureTag, ok bool) {
	switch {
	case c.A.Body == id:
		return c.A, c.B, true
	case c.B.Body == id:
		return c.B, c.A, true
	default:
		return FixtureTag{}, FixtureTag{}, false
	}
}
