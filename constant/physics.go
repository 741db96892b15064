package constant

// World / physics unit conversion
const (
	// PixelsPerMeter converts world units (pixels of the reference 1500x700 view) to physics units
	PixelsPerMeter = 30.0

	// Gravity is the downward acceleration in physics units per second squared (Y grows down)
	Gravity = 9.8
)

// Simulation step
const (
	// PhysicsTimeStep is the fixed simulated time per tick
	PhysicsTimeStep = 1.0 / 60.0

	// VelocityIterations and PositionIterations are the fixed solver iteration counts per step
	VelocityIterations = 8
	PositionIterations = 3
)

// Rider dynamics
const (
	// MaxSpeed caps forward speed; acceleration force is only applied below it
	MaxSpeed = 14.0

	// AccelerationForce is the forward force applied while accelerate is held
	AccelerationForce = 80.0

	// RotationTorque is the backward torque applied while airborne and accelerating
	RotationTorque = 10.0

	// MaxAngularVelocity is the magnitude of the negative angular velocity floor
	MaxAngularVelocity = 7.0

	// AngularFriction is the per-tick decay factor of angular velocity when not accelerating
	AngularFriction = 0.95

	// AirborneSpeed is the vertical speed above which the bike is treated as airborne
	AirborneSpeed = 0.5

	// FullTurnEpsilon absorbs float accumulation error when comparing against 2π
	FullTurnEpsilon = 1e-9
)

// Bicycle geometry in world units
const (
	BikeSpawnX = 100.0
	BikeSpawnY = 300.0

	FrameHalfWidth  = 30.0
	FrameHalfHeight = 8.0
	FrameDensity    = 0.5
	FrameFriction   = 0.3

	WheelRadius  = 15.0
	WheelOffsetX = 20.0
	WheelOffsetY = 8.0
	WheelDensity = 0.3

	// WheelFriction doubles frame friction for grip
	WheelFriction = FrameFriction * 2

	// GroundFriction matches the box2d fixture default
	GroundFriction = 0.2
)
