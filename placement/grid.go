package placement

import (
	"github.com/lixenwraith/crowd-drift/physics"
)

// probeGrid partitions the bounds into cells sized GridCellFactor times
// the requested radius and probes random cells for one that is free of
// the most recently added footprints
// Returns ok=false when the bounds are degenerate or all probes land in
// occupied cells
func (r *Resolver) probeGrid(radius float64, b Bounds, occupied []physics.Footprint) (float64, float64, bool) {
	cell := r.cfg.GridCellFactor * radius
	if cell <= 0 || b.Width() <= 0 || b.Depth() <= 0 {
		return 0, 0, false
	}

	cols := int(b.Width() / cell)
	rows := int(b.Depth() / cell)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	recent := occupied
	if n := r.cfg.RecentWindow; n > 0 && len(recent) > n {
		recent = recent[len(recent)-n:]
	}

	for probe := 0; probe < r.cfg.GridProbes; probe++ {
		ci := r.rng.Intn(cols)
		cj := r.rng.Intn(rows)

		// Probe the cell center so an accepted position keeps at least
		// (cell/2 - radius) clearance to neighboring cells
		x := b.MinX + (float64(ci)+0.5)*cell
		z := b.MinZ + (float64(cj)+0.5)*cell
		if x > b.MaxX || z > b.MaxZ {
			continue
		}

		if !overlapsAny(x, z, radius, recent) {
			return x, z, true
		}
	}
	return 0, 0, false
}
