// Package placement finds non-overlapping ground-plane positions for new
// people among existing footprints. The search is tiered: random sampling,
// a coarse occupancy-grid fallback for large populations, and a
// force-based relaxation that never fails outright.
package placement

import (
	"github.com/lixenwraith/crowd-drift/parameter"
	"github.com/lixenwraith/crowd-drift/physics"
	"github.com/lixenwraith/crowd-drift/vmath"
)

// Bounds is the axis-aligned visible spawn region on the ground plane,
// derived from the camera viewport
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Depth() float64 {
	return b.MaxZ - b.MinZ
}

func (b Bounds) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Config bounds the search cost per tier
type Config struct {
	// Iterations caps uniform random samples (tier 1)
	Iterations int

	// GridThreshold is the population at which tier 2 activates
	GridThreshold int

	// GridProbes caps random cell probes (tier 2)
	GridProbes int

	// GridCellFactor sizes grid cells relative to the requested radius
	GridCellFactor float64

	// RecentWindow restricts tier-2 overlap checks to the newest footprints
	RecentWindow int

	// RelaxPasses caps force-based separation passes (tier 3)
	RelaxPasses int

	// RelaxAmplify scales each push slightly past touching
	RelaxAmplify float64
}

// DefaultConfig returns the tuned search parameters
func DefaultConfig() Config {
	return Config{
		Iterations:     parameter.CollisionIterations,
		GridThreshold:  parameter.GridPopulationThreshold,
		GridProbes:     parameter.GridProbes,
		GridCellFactor: parameter.GridCellFactor,
		RecentWindow:   parameter.RecentWindow,
		RelaxPasses:    parameter.RelaxPasses,
		RelaxAmplify:   parameter.RepulsionAmplify,
	}
}

// Resolver performs placement searches with its own deterministic rng
type Resolver struct {
	cfg Config
	rng *vmath.FastRand
}

func NewResolver(cfg Config, rng *vmath.FastRand) *Resolver {
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	if cfg.RelaxPasses < 1 {
		cfg.RelaxPasses = 1
	}
	return &Resolver{cfg: cfg, rng: rng}
}

// FindPosition returns a footprint center for radius that does not overlap
// any occupied footprint, or the best-effort relaxation result when the
// region is saturated. It always returns a finite position
func (r *Resolver) FindPosition(radius float64, b Bounds, occupied []physics.Footprint) (x, z float64) {
	// Tier 1: random sampling. An empty world accepts the first sample
	// unconditionally
	lastX, lastZ := r.sample(b)
	if len(occupied) == 0 {
		return lastX, lastZ
	}
	if !overlapsAny(lastX, lastZ, radius, occupied) {
		return lastX, lastZ
	}
	for i := 1; i < r.cfg.Iterations; i++ {
		sx, sz := r.sample(b)
		lastX, lastZ = sx, sz
		if !overlapsAny(sx, sz, radius, occupied) {
			return sx, sz
		}
	}

	// Tier 2: coarse grid probing once per-sample full scans get costly.
	// Overlap checks run against a recent window only, trading exactness
	// for bounded cost
	if len(occupied) >= r.cfg.GridThreshold {
		if gx, gz, ok := r.probeGrid(radius, b, occupied); ok {
			return gx, gz
		}
	}

	// Tier 3: force-based relaxation from the last sample. Bounded passes,
	// early out on a clean pass; the result may sit outside bounds but is
	// always finite and usually overlap-free
	return r.relax(lastX, lastZ, radius, occupied)
}

func (r *Resolver) sample(b Bounds) (float64, float64) {
	return r.rng.Range(b.MinX, b.MaxX), r.rng.Range(b.MinZ, b.MaxZ)
}

func (r *Resolver) relax(x, z, radius float64, occupied []physics.Footprint) (float64, float64) {
	for pass := 0; pass < r.cfg.RelaxPasses; pass++ {
		overlaps := 0
		for _, fp := range occupied {
			nx, nz := physics.PushApart(x, z, radius, fp, r.cfg.RelaxAmplify, r.rng)
			if nx != x || nz != z {
				overlaps++
				x, z = nx, nz
			}
		}
		if overlaps == 0 {
			break
		}
	}
	return x, z
}

func overlapsAny(x, z, radius float64, occupied []physics.Footprint) bool {
	candidate := physics.Footprint{X: x, Z: z, Radius: radius}
	for _, fp := range occupied {
		if candidate.Overlaps(fp) {
			return true
		}
	}
	return false
}
