package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/flip-rider/bike"
	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/physics"
	"github.com/lixenwraith/flip-rider/terrain"
	"github.com/lixenwraith/flip-rider/vmath"
)

// Params configures a Game
type Params struct {
	Seed      uint64 // terrain waveform sequence; zero is remapped by the generator
	Gravity   float64
	Dynamics  bike.Dynamics
	Terrain   terrain.Config
	FallLimit float64 // world units
}

// DefaultParams returns the standard game setup
func DefaultParams() Params {
	return Params{
		Seed:      1,
		Gravity:   constant.Gravity,
		Dynamics:  bike.DefaultDynamics(),
		Terrain:   terrain.DefaultConfig(),
		FallLimit: constant.FallLimit,
	}
}

// Input is the rider intent for one tick
type Input struct {
	Accelerate bool
}

// TickResult reports what happened during a tick
type TickResult struct {
	Rotated  bool
	Extended bool
	Ended    bool
	Reason   EndReason
}

// Game owns the world, terrain, bicycle and session and advances them one tick at a time
// Not safe for concurrent use; the frontend loop is the only caller
type Game struct {
	params Params

	world    *physics.World
	ground   *physics.Body
	bikeBody *physics.Body
	bike     *bike.Bicycle
	terrain  *terrain.Terrain

	session *Session
	camera  Camera
	sounds  Sounds

	pedaling bool
}

// NewGame builds the physics world, the initial terrain and the bicycle
// A nil sounds disables cues
func NewGame(p Params, sounds Sounds) (*Game, error) {
	if sounds == nil {
		sounds = noSounds{}
	}

	world := physics.NewWorld(vmath.V(0, p.Gravity), physics.StepConfig{
		TimeStep:           constant.PhysicsTimeStep,
		VelocityIterations: constant.VelocityIterations,
		PositionIterations: constant.PositionIterations,
	})

	ground := world.NewStaticBody()
	terr, err := terrain.New(p.Terrain, groundBoundary{body: ground}, vmath.NewFastRand(p.Seed))
	if err != nil {
		return nil, fmt.Errorf("engine: initial terrain: %w", err)
	}

	bicycle, body := bike.Spawn(world, p.Dynamics)

	g := &Game{
		params:   p,
		world:    world,
		ground:   ground,
		bikeBody: body,
		bike:     bicycle,
		terrain:  terr,
		session:  NewSession(),
		camera:   newCamera(vmath.V(constant.ScreenWidth/2, constant.ScreenHeight/2), constant.CameraSmoothing),
		sounds:   sounds,
	}

	log.Printf("Game created: seed %d, %d terrain points, frontier %.0f",
		p.Seed, len(terr.Points()), terr.Frontier())
	return g, nil
}

// Tick advances one fixed step; a finished run only silences the pedal cue
func (g *Game) Tick(in Input) (TickResult, error) {
	var res TickResult
	s := g.session

	if !s.Active() {
		g.setPedal(false)
		return res, nil
	}

	g.applyInput(s, in)
	g.world.Step()
	res.Rotated = g.trackRotation(s)

	extended, err := g.extendTerrain(s)
	res.Extended = extended
	if err != nil {
		return res, err
	}

	if v := g.checkGameOver(s); v.Over {
		res.Ended = true
		res.Reason = v.Reason
	}

	g.camera.follow(vmath.V(g.bike.Pose().Pos.X, constant.CameraCenterY))
	return res, nil
}

// ===== TICK PHASES =====

func (g *Game) applyInput(s *Session, in Input) {
	g.bike.ApplyInput(in.Accelerate)
	g.setPedal(in.Accelerate && s.Active())
}

func (g *Game) trackRotation(s *Session) bool {
	if !g.bike.StepRotation() {
		return false
	}
	if s.RecordRotation() {
		g.sounds.PlayFlip()
		return true
	}
	return false
}

func (g *Game) extendTerrain(s *Session) (bool, error) {
	if !s.Active() {
		return false, nil
	}
	extended, err := g.terrain.ExtendIfNeeded(g.bike.Pose().Pos.X)
	if err != nil {
		return extended, fmt.Errorf("engine: extend terrain: %w", err)
	}
	return extended, nil
}

func (g *Game) checkGameOver(s *Session) Verdict {
	pose := g.bike.Pose()
	v := CheckGameOver(g.bikeBody.Contacts(), g.bikeBody.ID(), g.ground.ID(), pose.Pos.Y, g.params.FallLimit)
	if v.Over {
		s.End(v.Reason)
		g.setPedal(false)
		g.sounds.PlayCrash()
		log.Printf("Bike at (%.0f, %.0f) angle %.2f", pose.Pos.X, pose.Pos.Y, pose.Angle)
	}
	return v
}

func (g *Game) setPedal(on bool) {
	if on == g.pedaling {
		return
	}
	g.pedaling = on
	if on {
		g.sounds.StartPedal()
	} else {
		g.sounds.StopPedal()
	}
}

// Restart puts the bicycle back at the spawn point and starts a new run
// Terrain and camera are kept; the camera eases back on the following ticks
func (g *Game) Restart() {
	g.bike.Reset()
	g.session.Restart()
	g.setPedal(false)
}

// ===== ACCESSORS =====

// Session returns the live session; frontends read it for display
func (g *Game) Session() *Session { return g.session }

// Terrain returns the ground model
func (g *Game) Terrain() *terrain.Terrain { return g.terrain }

// BikePose returns the bicycle pose in world units
func (g *Game) BikePose() bike.Pose { return g.bike.Pose() }

// BikeSpeed returns forward speed in physics units per second
func (g *Game) BikeSpeed() float64 { return g.bike.Speed() }

// Camera returns the current view centre
func (g *Game) Camera() Camera { return g.camera }

// Steps returns the number of physics steps taken
func (g *Game) Steps() uint64 { return g.world.Steps() }
