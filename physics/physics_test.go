package physics

import (
	"errors"
	"testing"

	"github.com/lixenwraith/flip-rider/vmath"
)

var testStep = StepConfig{TimeStep: 1.0 / 60.0, VelocityIterations: 8, PositionIterations: 3}

func flatGround(x0, x1, y float64) []vmath.Vec2 {
	var pts []vmath.Vec2
	for x := x0; x <= x1; x++ {
		pts = append(pts, vmath.V(x, y))
	}
	return pts
}

func TestBodyIDsAreUnique(t *testing.T) {
	w := NewWorld(vmath.V(0, 9.8), testStep)
	a := w.NewStaticBody()
	b := w.NewDynamicBody(vmath.V(0, 0), 0)
	if a.ID() == 0 || b.ID() == 0 {
		t.Fatal("zero body id assigned")
	}
	if a.ID() == b.ID() {
		t.Fatalf("duplicate body id %d", a.ID())
	}
}

func TestReplaceChainKeepsSingleFixture(t *testing.T) {
	w := NewWorld(vmath.V(0, 9.8), testStep)
	ground := w.NewStaticBody()
	mat := Material{Friction: 0.2}

	if err := ground.ReplaceChain(flatGround(0, 10, 5), mat, RoleGround); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := ground.ReplaceChain(flatGround(0, 20, 5), mat, RoleGround); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	tags := ground.Fixtures()
	if len(tags) != 1 {
		t.Fatalf("expected 1 fixture after replace, got %d", len(tags))
	}
	if tags[0].Role != RoleGround || tags[0].Body != ground.ID() {
		t.Errorf("unexpected tag %+v", tags[0])
	}
}

func TestReplaceChainDegenerate(t *testing.T) {
	w := NewWorld(vmath.V(0, 9.8), testStep)
	ground := w.NewStaticBody()
	mat := Material{Friction: 0.2}

	if err := ground.ReplaceChain(flatGround(0, 10, 5), mat, RoleGround); err != nil {
		t.Fatal(err)
	}

	// Single point: old shape removed, nothing created
	if err := ground.ReplaceChain([]vmath.Vec2{vmath.V(1, 1)}, mat, RoleGround); err != nil {
		t.Fatalf("single point should not error: %v", err)
	}
	if n := len(ground.Fixtures()); n != 0 {
		t.Errorf("expected no fixtures, got %d", n)
	}

	if err := ground.ReplaceChain(nil, mat, RoleGround); err != nil {
		t.Fatalf("empty should not error: %v", err)
	}
}

func TestReplaceChainRejectsCloseVertices(t *testing.T) {
	w := NewWorld(vmath.V(0, 9.8), testStep)
	ground := w.NewStaticBody()
	mat := Material{Friction: 0.2}

	if err := ground.ReplaceChain(flatGround(0, 10, 5), mat, RoleGround); err != nil {
		t.Fatal(err)
	}

	bad := []vmath.Vec2{vmath.V(0, 0), vmath.V(1, 0), vmath.V(1, 0.0001)}
	err := ground.ReplaceChain(bad, mat, RoleGround)
	if !errors.Is(err, ErrChainVertices) {
		t.Fatalf("expected ErrChainVertices, got %v", err)
	}

	// Failed replace leaves the previous boundary intact
	if n := len(ground.Fixtures()); n != 1 {
		t.Errorf("expected old fixture to survive, got %d fixtures", n)
	}
}

func TestFixtureRolesTagged(t *testing.T) {
	w := NewWorld(vmath.V(0, 9.8), testStep)
	body := w.NewDynamicBody(vmath.V(0, 0), 0)
	body.AttachBox(vmath.V(1, 0.25), Material{Density: 0.5, Friction: 0.3}, RoleFrame)
	body.AttachCircle(0.5, vmath.V(0.6, 0.25), Material{Density: 0.3, Friction: 0.6}, RoleWheel)
	body.AttachCircle(0.5, vmath.V(-0.6, 0.25), Material{Density: 0.3, Friction: 0.6}, RoleWheel)

	counts := make(map[ShapeRole]int)
	for _, tag := range body.Fixtures() {
		if tag.Body != body.ID() {
			t.Errorf("fixture tagged with body %d, want %d", tag.Body, body.ID())
		}
		counts[tag.Role]++
	}
	if counts[RoleFrame] != 1 || counts[RoleWheel] != 2 {
		t.Errorf("unexpected role counts: %v", counts)
	}
}

func TestGravityMovesDynamicBody(t *testing.T) {
	w := NewWorld(vmath.V(0, 9.8), testStep)
	body := w.NewDynamicBody(vmath.V(0, 0), 0)
	body.AttachBox(vmath.V(0.5, 0.5), Material{Density: 1}, RoleFrame)

	for i := 0; i < 30; i++ {
		w.Step()
	}
	if w.Steps() != 30 {
		t.Errorf("Steps() = %d, want 30", w.Steps())
	}
	if body.Position().Y <= 0 {
		t.Errorf("body should fall toward +Y, at %v", body.Position())
	}
	if body.LinearVelocity().Y <= 0 {
		t.Errorf("expected downward velocity, got %v", body.LinearVelocity())
	}
}

func TestContactsReportRoles(t *testing.T) {
	w := NewWorld(vmath.V(0, 9.8), testStep)
	ground := w.NewStaticBody()
	if err := ground.ReplaceChain(flatGround(-10, 10, 2), Material{Friction: 0.2}, RoleGround); err != nil {
		t.Fatal(err)
	}

	box := w.NewDynamicBody(vmath.V(0, 0), 0)
	box.AttachBox(vmath.V(0.5, 0.5), Material{Density: 1, Friction: 0.3}, RoleFrame)

	for i := 0; i < 120; i++ {
		w.Step()
	}

	found := false
	for _, c := range box.Contacts() {
		if !c.Touching {
			continue
		}
		own, other, ok := c.Split(box.ID())
		if !ok {
			t.Fatalf("contact does not involve box: %+v", c)
		}
		if own.Role == RoleFrame && other.Role == RoleGround && other.Body == ground.ID() {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a touching frame/ground contact, got %+v", box.Contacts())
	}
}

func TestTransformAndVelocity(t *testing.T) {
	w := NewWorld(vmath.V(0, 9.8), testStep)
	body := w.NewDynamicBody(vmath.V(0, 0), 0)
	body.AttachBox(vmath.V(0.5, 0.5), Material{Density: 1}, RoleFrame)

	body.SetTransform(vmath.V(3, 4), 1.5)
	body.SetLinearVelocity(vmath.V(2, -1))
	body.SetAngularVelocity(-3)

	if p := body.Position(); p != vmath.V(3, 4) {
		t.Errorf("Position = %v", p)
	}
	if a := body.Angle(); a != 1.5 {
		t.Errorf("Angle = %v", a)
	}
	if v := body.LinearVelocity(); v != vmath.V(2, -1) {
		t.Errorf("LinearVelocity = %v", v)
	}
	if av := body.AngularVelocity(); av != -3 {
		t.Errorf("AngularVelocity = %v", av)
	}
}

func TestContactSplit(t *testing.T) {
	c := Contact{
		A:        FixtureTag{Body: 7, Role: RoleGround},
		B:        FixtureTag{Body: 3, Role: RoleWheel},
		Touching: true,
	}
	own, other, ok := c.Split(3)
	if !ok || own.Role != RoleWheel || other.Body != 7 {
		t.Errorf("Split(3) = %+v, %+v, %v", own, other, ok)
	}
	if _, _, ok := c.Split(99); ok {
		t.Error("Split of unrelated body should fail")
	}
}
