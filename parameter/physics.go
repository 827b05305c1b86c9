package parameter

// Physics constants shared by the body step and the person lifecycle
// All values are world units (one unit ~ one centimeter of scene space)

const (
	// GravityY is the fixed vertical acceleration applied while falling
	GravityY = -9.8

	// RestVelocityThreshold ends the bounce phase once all velocity
	// components drop below it (checked after a ground contact)
	RestVelocityThreshold = 0.5

	// DampingMin and DampingMax bound the per-person bounce energy retention
	DampingMin = 0.45
	DampingMax = 0.7

	// EntryDropHeight is how far above the resolved spawn position a
	// person materializes before falling in
	EntryDropHeight = 200.0

	// SettleDuration is the eased approach to resting height after the
	// bounce phase ends, in seconds
	SettleDuration = 1.0

	// ExitDuration is the eased rise-and-fade on eviction, in seconds
	ExitDuration = 1.0

	// ExitRiseHeight is how far a person ascends during the exit animation
	ExitRiseHeight = 60.0

	// RepulsionAmplify scales the de-overlap push slightly past touching
	// so separated footprints do not re-collide on the next pass
	RepulsionAmplify = 1.1

	// DragImpulseMax caps the velocity magnitude imparted on drag release
	DragImpulseMax = 120.0

	// FloatRotationRate is the constant idle spin, radians per second
	FloatRotationRate = 0.35
)

// Float animation ranges, randomized per person at spawn
const (
	FloatSpeedMin     = 0.8
	FloatSpeedMax     = 1.6
	FloatAmplitudeMin = 2.0
	FloatAmplitudeMax = 6.0
)
