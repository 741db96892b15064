package constant

// Terrain generation, world units
const (
	// SegmentLength is the X span of a single generated segment
	SegmentLength = 1000.0

	// TerrainStep is the sampling distance between terrain points
	TerrainStep = 30.0

	// GenerateThreshold is the distance from the frontier at which a new segment is generated
	GenerateThreshold = 500.0

	// TerrainBaseY is the ground height at the origin
	TerrainBaseY = 350.0

	// InitialTerrainLength is the frontier reached at construction
	InitialTerrainLength = 3000.0
)

// Waveform parameters (amplitude in world units, frequency per world unit)
const (
	WavyAmplitude  = 50.0
	WavyFrequency  = 0.006
	HillyAmplitude = 80.0
	HillyFrequency = 0.004
	SteepAmplitude = 100.0
	SteepFrequency = 0.008
)

// Chain vertex spacing
const (
	// ChainVertexSlop is box2d's linear slop in physics units; closer chain vertices are rejected
	ChainVertexSlop = 0.005

	// MinVertexSpacing is the smallest X gap kept between terrain points, physics units
	MinVertexSpacing = 2 * ChainVertexSlop

	// MinTerrainStep is the smallest sampling step in world units
	MinTerrainStep = MinVertexSpacing * PixelsPerMeter
)
