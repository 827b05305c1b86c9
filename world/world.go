// Package world orchestrates the crowd: it owns the ordered collection of
// live people, the join schedule, the camera supplying spawn bounds, and
// the per-frame update loop.
//
// The world is single-threaded and frame-driven: all mutation happens
// inside Update or synchronously from input intents between ticks.
package world

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/crowd-drift/parameter"
	"github.com/lixenwraith/crowd-drift/person"
	"github.com/lixenwraith/crowd-drift/physics"
	"github.com/lixenwraith/crowd-drift/placement"
	"github.com/lixenwraith/crowd-drift/vmath"
)

// Config parameterizes one world instance; the two historic orchestrator
// variants collapse into this single structure
type Config struct {
	// MaxPeople bounds the live population; exceeding it evicts oldest-first
	MaxPeople int

	// SpawnIntervalBase is the mean join cadence (randomized per cycle)
	SpawnIntervalBase time.Duration

	// InitialBatch people are added at startup, BatchChunk per frame
	InitialBatch int
	BatchChunk   int

	// Footprint radius range for new arrivals
	SizeMin, SizeMax float64

	// DragEnabled gates the pointer drag capability
	DragEnabled bool

	// Seed fixes the simulation rng; 0 derives one from the clock
	Seed uint64

	Placement placement.Config
}

// DefaultConfig returns the tuned world parameters
func DefaultConfig() Config {
	return Config{
		MaxPeople:         parameter.MaxPeople,
		SpawnIntervalBase: parameter.SpawnIntervalBase,
		InitialBatch:      parameter.InitialBatch,
		BatchChunk:        parameter.BatchChunk,
		SizeMin:           parameter.SizeMin,
		SizeMax:           parameter.SizeMax,
		DragEnabled:       true,
		Placement:         placement.DefaultConfig(),
	}
}

// World owns the entity collection lifecycle and the frame loop state
type World struct {
	cfg      Config
	clock    TimeProvider
	epoch    time.Time
	rng      *vmath.FastRand
	resolver *placement.Resolver

	camera    *Camera
	scheduler *JoinScheduler

	// people is insertion-ordered: index 0 is the oldest arrival
	people []*person.Person

	// exiting people have been evicted but still animate out; they no
	// longer count toward MaxPeople or occupy placement footprints
	exiting []*person.Person

	// counter is the monotonic count of people ever added
	counter uint64

	viewW, viewH int

	dragging *person.Person
	started  bool
	pending  int // remaining initial-batch adds

	// OnJoin and OnLeave fire synchronously from the tick for UI/audio
	// collaborators; either may be nil
	OnJoin  func(*person.Person)
	OnLeave func(*person.Person)
}

// New creates a world against an injected clock
func New(cfg Config, clock TimeProvider) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	return &World{
		cfg:      cfg,
		clock:    clock,
		epoch:    clock.Now(),
		rng:      rng,
		resolver: placement.NewResolver(cfg.Placement, rng),
		camera:   NewCamera(),
		viewW:    120,
		viewH:    40,
	}
}

// Start arms the join scheduler and queues the initial batch
// Idempotent; Stop tears the schedule down again
func (w *World) Start() {
	if w.started {
		return
	}
	w.started = true
	w.pending = w.cfg.InitialBatch
	w.scheduler = NewJoinScheduler(w.cfg.SpawnIntervalBase, w.clock.Now(), w.rng)
}

// Stop cancels scheduled joins; live people keep animating
func (w *World) Stop() {
	if w.scheduler != nil {
		w.scheduler.Stop()
	}
	w.started = false
}

func (w *World) Camera() *Camera {
	return w.camera
}

// SetViewport records the terminal size used to derive spawn bounds
func (w *World) SetViewport(cols, rows int) {
	if cols > 0 {
		w.viewW = cols
	}
	if rows > 0 {
		w.viewH = rows
	}
}

// Count returns the live population (excluding people animating out)
func (w *World) Count() int {
	return len(w.people)
}

// Counter returns the monotonic count of people ever added
func (w *World) Counter() uint64 {
	return w.counter
}

// Position returns the physics position of a live person by identity
func (w *World) Position(id uint64) (vmath.Vec3, bool) {
	for _, p := range w.people {
		if p.ID() == id {
			return p.Position(), true
		}
	}
	return vmath.Vec3{}, false
}

// People returns every person that should render: live ones first, then
// those animating out. The slice is rebuilt per call; callers must not
// retain it across ticks
func (w *World) People() []*person.Person {
	out := make([]*person.Person, 0, len(w.people)+len(w.exiting))
	out = append(out, w.people...)
	out = append(out, w.exiting...)
	return out
}

// AddPerson places and creates one person, evicting the oldest when the
// population bound would be exceeded. Returns the new person's identity
func (w *World) AddPerson() (uint64, error) {
	size := w.rng.Range(w.cfg.SizeMin, w.cfg.SizeMax)
	damping := w.rng.Range(parameter.DampingMin, parameter.DampingMax)

	bounds := w.camera.VisibleBounds(w.viewW, w.viewH)
	occupied := make([]physics.Footprint, 0, len(w.people))
	for _, p := range w.people {
		occupied = append(occupied, p.Footprint())
	}

	x, z := w.resolver.FindPosition(size*w.camera.RadiusScale(), bounds, occupied)

	w.counter++
	p, err := person.New(person.Params{
		ID:          w.counter,
		Spawn:       vmath.Vec3{X: x, Z: z},
		Size:        size,
		Damping:     damping,
		Color:       w.randomColor(),
		FloatSpeed:  w.rng.Range(parameter.FloatSpeedMin, parameter.FloatSpeedMax),
		FloatAmp:    w.rng.Range(parameter.FloatAmplitudeMin, parameter.FloatAmplitudeMax),
		FloatOffset: w.rng.Range(0, 6.28318530717958647692),
	})
	if err != nil {
		w.counter--
		return 0, fmt.Errorf("world: add person: %w", err)
	}

	w.people = append(w.people, p)
	if w.OnJoin != nil {
		w.OnJoin(p)
	}

	for len(w.people) > w.cfg.MaxPeople && w.cfg.MaxPeople > 0 {
		w.evictOldest()
	}
	return p.ID(), nil
}

// evictOldest shifts the first arrival out of the live set and starts its
// exit transition; it keeps animating in the exiting set until gone
func (w *World) evictOldest() {
	oldest := w.people[0]
	w.people = w.people[1:]

	if w.dragging == oldest {
		w.dragging = nil
	}

	oldest.BeginExit(nil)
	w.exiting = append(w.exiting, oldest)
	if w.OnLeave != nil {
		w.OnLeave(oldest)
	}
}

// Update advances one frame: scheduled joins, batch backlog, entity
// physics, pairwise de-overlap, exit animations, and camera smoothing
func (w *World) Update(dt float64) {
	now := w.clock.Now()

	if w.started {
		if w.scheduler != nil {
			for i := w.scheduler.Due(now); i > 0; i-- {
				w.AddPerson()
			}
		}
		// Drain the initial batch one chunk per frame to keep early
		// frames responsive
		if w.pending > 0 {
			chunk := w.cfg.BatchChunk
			if chunk < 1 {
				chunk = 1
			}
			if chunk > w.pending {
				chunk = w.pending
			}
			for i := 0; i < chunk; i++ {
				w.AddPerson()
			}
			w.pending -= chunk
		}
	}

	nowSec := now.Sub(w.epoch).Seconds()
	for _, p := range w.people {
		p.Update(dt, nowSec)
	}

	w.separatePlaced()

	for _, p := range w.exiting {
		p.Update(dt, nowSec)
	}
	w.compactExiting()

	w.camera.Update(dt)
}

// separatePlaced runs pairwise repulsion between already-placed people so
// drag drops and resolver best-effort positions relax apart over a few
// frames. Full O(n^2) scan, acceptable only because MaxPeople is bounded
func (w *World) separatePlaced() {
	for i := 0; i < len(w.people); i++ {
		a := w.people[i]
		if !isPlaced(a) {
			continue
		}
		for j := i + 1; j < len(w.people); j++ {
			b := w.people[j]
			if !isPlaced(b) {
				continue
			}
			physics.SeparatePlanar(&a.Body, &b.Body, parameter.RepulsionAmplify)
		}
	}
}

func isPlaced(p *person.Person) bool {
	switch p.State() {
	case person.StateFloating, person.StateSettling:
		return true
	default:
		return false
	}
}

func (w *World) compactExiting() {
	kept := w.exiting[:0]
	for _, p := range w.exiting {
		if p.State() != person.StateGone {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(w.exiting); i++ {
		w.exiting[i] = nil
	}
	w.exiting = kept
}

// randomColor draws a saturated, readable hue from the simulation rng
func (w *World) randomColor() colorful.Color {
	return colorful.Hsv(
		w.rng.Range(0, 360),
		w.rng.Range(0.5, 0.9),
		w.rng.Range(0.7, 1.0),
	)
}
