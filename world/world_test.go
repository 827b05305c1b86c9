package world

import (
	"testing"
	"time"

	"github.com/lixenwraith/crowd-drift/person"
)

const dt = 1.0 / 60.0

func newTestWorld(mut func(*Config)) (*World, *MockTimeProvider) {
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	cfg := DefaultConfig()
	cfg.Seed = 12345
	cfg.InitialBatch = 0
	if mut != nil {
		mut(&cfg)
	}
	return New(cfg, clock), clock
}

func tickFor(w *World, clock *MockTimeProvider, d time.Duration) {
	step := time.Second / 60
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		clock.Advance(step)
		w.Update(dt)
	}
}

func TestAddPersonReturnsIdentityAndCounts(t *testing.T) {
	w, _ := newTestWorld(nil)

	id1, err := w.AddPerson()
	if err != nil {
		t.Fatalf("AddPerson: %v", err)
	}
	id2, err := w.AddPerson()
	if err != nil {
		t.Fatalf("AddPerson: %v", err)
	}

	if id1 == 0 || id2 == 0 || id1 == id2 {
		t.Errorf("identities not unique and non-zero: %d, %d", id1, id2)
	}
	if w.Count() != 2 {
		t.Errorf("Count = %d, want 2", w.Count())
	}
	if w.Counter() != 2 {
		t.Errorf("Counter = %d, want 2", w.Counter())
	}

	if _, ok := w.Position(id1); !ok {
		t.Error("Position lookup failed for live person")
	}
	if _, ok := w.Position(999); ok {
		t.Error("Position lookup succeeded for unknown id")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	w, _ := newTestWorld(func(c *Config) { c.MaxPeople = 2 })

	id1, _ := w.AddPerson()
	w.AddPerson()
	w.AddPerson()

	if w.Count() != 2 {
		t.Fatalf("Count after third add = %d, want 2", w.Count())
	}
	if _, ok := w.Position(id1); ok {
		t.Error("first person still in the live set")
	}

	// The evicted person received its exit transition and keeps rendering
	var evicted *person.Person
	for _, p := range w.People() {
		if p.ID() == id1 {
			evicted = p
		}
	}
	if evicted == nil {
		t.Fatal("evicted person missing from render set during exit")
	}
	if evicted.State() != person.StateExiting {
		t.Errorf("evicted state = %v, want exiting", evicted.State())
	}

	if w.Counter() != 3 {
		t.Errorf("Counter = %d, want 3 (ever added)", w.Counter())
	}
}

func TestEvictedPersonFinishesAndDisappears(t *testing.T) {
	w, clock := newTestWorld(func(c *Config) { c.MaxPeople = 1 })

	w.AddPerson()
	w.AddPerson()

	tickFor(w, clock, 2*time.Second)
	if got := len(w.People()); got != 1 {
		t.Errorf("render set after exit animation = %d people, want 1", got)
	}
}

func TestScheduledJoinsWithVirtualClock(t *testing.T) {
	w, clock := newTestWorld(func(c *Config) {
		c.SpawnIntervalBase = 1 * time.Second
	})
	w.Start()

	if w.Count() != 0 {
		t.Fatal("no joins expected before time advances")
	}

	// Interval is base*(0.5+rand) in [0.5s, 1.5s); 30 virtual seconds
	// must produce between 20 and 60 joins
	tickFor(w, clock, 30*time.Second)

	if w.Count() < 20 || w.Count() > 60 {
		t.Errorf("joins after 30s = %d, want 20..60", w.Count())
	}
}

func TestStopSilencesScheduler(t *testing.T) {
	w, clock := newTestWorld(func(c *Config) {
		c.SpawnIntervalBase = 1 * time.Second
	})
	w.Start()
	w.Stop()

	tickFor(w, clock, 10*time.Second)
	if w.Count() != 0 {
		t.Errorf("joins after Stop = %d, want 0", w.Count())
	}
}

func TestInitialBatchDrainsInChunks(t *testing.T) {
	w, clock := newTestWorld(func(c *Config) {
		c.InitialBatch = 10
		c.BatchChunk = 4
		c.SpawnIntervalBase = time.Hour // keep scheduled joins out of the way
	})
	w.Start()

	clock.Advance(time.Second / 60)
	w.Update(dt)
	if w.Count() != 4 {
		t.Errorf("after frame 1: %d people, want 4", w.Count())
	}
	clock.Advance(time.Second / 60)
	w.Update(dt)
	if w.Count() != 8 {
		t.Errorf("after frame 2: %d people, want 8", w.Count())
	}
	clock.Advance(time.Second / 60)
	w.Update(dt)
	if w.Count() != 10 {
		t.Errorf("after frame 3: %d people, want 10", w.Count())
	}
}

func TestNewArrivalsDoNotOverlapSettledCrowd(t *testing.T) {
	w, clock := newTestWorld(func(c *Config) { c.MaxPeople = 30 })
	w.SetViewport(300, 100) // generous spawn area keeps the search sparse

	for i := 0; i < 10; i++ {
		w.AddPerson()
		// Let each arrival mostly settle before the next shows up
		tickFor(w, clock, 3*time.Second)
	}

	people := w.People()
	for i := 0; i < len(people); i++ {
		for j := i + 1; j < len(people); j++ {
			a, b := people[i], people[j]
			if a.State() == person.StateFloating && b.State() == person.StateFloating {
				if a.CollidesWith(b.Position(), b.Body.Size) {
					t.Errorf("settled people %d and %d overlap", a.ID(), b.ID())
				}
			}
		}
	}
}

func TestDragThroughWorld(t *testing.T) {
	w, clock := newTestWorld(func(c *Config) { c.DragEnabled = true })

	id, _ := w.AddPerson()
	tickFor(w, clock, 40*time.Second) // settle into floating

	pos, _ := w.Position(id)
	grabbed := w.BeginDragAt(pos.X, pos.Z)
	if grabbed != id {
		t.Fatalf("BeginDragAt grabbed %d, want %d", grabbed, id)
	}
	if !w.Dragging() {
		t.Fatal("Dragging() false during drag")
	}

	clock.Advance(100 * time.Millisecond)
	w.DragTo(pos.X+50, pos.Z)
	moved, _ := w.Position(id)
	if moved.X != pos.X+50 {
		t.Errorf("dragged X = %v, want %v", moved.X, pos.X+50)
	}

	w.EndDrag()
	if w.Dragging() {
		t.Error("Dragging() true after release")
	}
}

func TestDragDisabledIsNoOp(t *testing.T) {
	w, clock := newTestWorld(func(c *Config) { c.DragEnabled = false })

	id, _ := w.AddPerson()
	tickFor(w, clock, 40*time.Second)

	pos, _ := w.Position(id)
	if got := w.BeginDragAt(pos.X, pos.Z); got != 0 {
		t.Errorf("drag grabbed %d with capability disabled", got)
	}
}

func TestJoinLeaveCallbacks(t *testing.T) {
	w, _ := newTestWorld(func(c *Config) { c.MaxPeople = 1 })

	joins, leaves := 0, 0
	w.OnJoin = func(*person.Person) { joins++ }
	w.OnLeave = func(*person.Person) { leaves++ }

	w.AddPerson()
	w.AddPerson()

	if joins != 2 {
		t.Errorf("joins = %d, want 2", joins)
	}
	if leaves != 1 {
		t.Errorf("leaves = %d, want 1", leaves)
	}
}
