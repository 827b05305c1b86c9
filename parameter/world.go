package parameter

import "time"

// World orchestration defaults, overridable through config.Load

const (
	// MaxPeople bounds the live population; oldest person is evicted first
	MaxPeople = 100

	// SpawnIntervalBase is the mean join cadence; each cycle the actual
	// delay is base * (0.5 + random()) to avoid a mechanical rhythm
	SpawnIntervalBase = 1500 * time.Millisecond

	// InitialBatch people are added at startup, BatchChunk per frame so
	// the first frames stay responsive
	InitialBatch = 24
	BatchChunk   = 6

	// Person footprint radius range
	SizeMin = 8.0
	SizeMax = 30.0
)

// Placement search configuration
const (
	// CollisionIterations bounds the random-sampling tier
	CollisionIterations = 8

	// GridPopulationThreshold switches placement to the grid fallback
	// once the occupied set makes full-scan sampling costly
	GridPopulationThreshold = 60

	// GridProbes bounds random cell probes in the grid tier
	GridProbes = 20

	// GridCellFactor sizes grid cells relative to the requested radius
	GridCellFactor = 2.5

	// RecentWindow restricts grid-tier overlap checks to the most
	// recently added footprints for bounded cost
	RecentWindow = 50

	// RelaxPasses bounds the force-based separation tier
	RelaxPasses = 5
)

// Camera and view
const (
	ZoomMin     = 0.2
	ZoomMax     = 3.0
	ZoomDefault = 1.0

	// ZoomSnapRate controls exponential approach of zoom to target, 1/s
	ZoomSnapRate = 8.0

	// PanStep is keyboard pan distance in world units per keypress
	PanStep = 20.0

	// PanInertiaDamping decays camera velocity per second after a fling
	PanInertiaDamping = 4.0
)

const (
	// FrameUpdateInterval is the render/update tick
	FrameUpdateInterval = time.Second / 60
)
