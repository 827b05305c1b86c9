package person

import (
	"math"
	"testing"

	"github.com/lixenwraith/crowd-drift/parameter"
	"github.com/lixenwraith/crowd-drift/vmath"
)

const dt = 1.0 / 60.0

func newTestPerson(t *testing.T, size float64) *Person {
	t.Helper()
	p, err := New(Params{
		ID:          1,
		Spawn:       vmath.Vec3{X: 10, Z: -5},
		Size:        size,
		Damping:     0.6,
		FloatSpeed:  1.0,
		FloatAmp:    3.0,
		FloatOffset: 0.5,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

// simulateUntil advances p until pred returns true or the time budget runs out
// Returns elapsed simulated seconds
func simulateUntil(p *Person, budget float64, pred func() bool) float64 {
	elapsed := 0.0
	for elapsed < budget && !pred() {
		p.Update(dt, elapsed)
		elapsed += dt
	}
	return elapsed
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Params)
	}{
		{"zero size", func(p *Params) { p.Size = 0 }},
		{"negative size", func(p *Params) { p.Size = -3 }},
		{"NaN size", func(p *Params) { p.Size = math.NaN() }},
		{"damping above one", func(p *Params) { p.Damping = 1.5 }},
		{"NaN spawn", func(p *Params) { p.Spawn.X = math.NaN() }},
	}
	for _, tc := range cases {
		params := Params{ID: 1, Size: 10, Damping: 0.5}
		tc.mut(&params)
		if _, err := New(params); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestSpawnsAirborne(t *testing.T) {
	p := newTestPerson(t, 12)
	if p.State() != StateFalling {
		t.Fatalf("initial state = %v, want falling", p.State())
	}
	wantY := 12 + parameter.EntryDropHeight
	if math.Abs(p.Position().Y-wantY) > 1e-9 {
		t.Errorf("spawn height = %v, want %v", p.Position().Y, wantY)
	}
	if p.Position().X != 10 || p.Position().Z != -5 {
		t.Errorf("spawn footprint center moved: %+v", p.Position())
	}
}

func TestFallsSettlesAndFloats(t *testing.T) {
	p := newTestPerson(t, 12)

	elapsed := simulateUntil(p, 60, func() bool { return p.State() == StateFloating })
	if p.State() != StateFloating {
		t.Fatalf("person never reached floating, stuck in %v", p.State())
	}
	if elapsed >= 60 {
		t.Fatal("floating not reached within time budget")
	}

	// Ground clamp invariant held through the whole entry
	if p.Position().Y < p.Body.RestHeight()-1e-9 {
		t.Errorf("resting below rest height: %v < %v", p.Position().Y, p.Body.RestHeight())
	}

	// Floating oscillation moves the visual position, not the physics body
	baseY := p.Position().Y
	rot := p.Rotation
	p.Update(dt, 100.3)
	if p.Position().Y != baseY {
		t.Error("floating tick mutated physics height")
	}
	if p.Rotation <= rot {
		t.Error("floating tick did not advance rotation")
	}
	wantFloat := p.FloatAmp * math.Sin(100.3*p.FloatSpeed+p.FloatOffset)
	gotFloat := p.VisualPosition().Y - baseY - p.Body.Size
	if math.Abs(gotFloat-wantFloat) > 1e-9 {
		t.Errorf("float offset = %v, want %v", gotFloat, wantFloat)
	}
}

func TestVisualPositionLiftsBySize(t *testing.T) {
	p := newTestPerson(t, 20)
	got := p.VisualPosition().Y - p.Position().Y
	if math.Abs(got-20) > 1e-9 {
		t.Errorf("visual lift = %v, want size 20", got)
	}
}

func TestCollidesWithSymmetry(t *testing.T) {
	a := newTestPerson(t, 10)
	b, err := New(Params{ID: 2, Spawn: vmath.Vec3{X: 20, Z: -5}, Size: 10, Damping: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	// Collapse both to ground level for a deterministic planar check
	a.Body.Pos.Y = a.Body.RestHeight()
	b.Body.Pos.Y = b.Body.RestHeight()

	ab := a.CollidesWith(b.Position(), b.Body.Size)
	ba := b.CollidesWith(a.Position(), a.Body.Size)
	if ab != ba {
		t.Errorf("collision predicate asymmetric: %v vs %v", ab, ba)
	}
	if !ab {
		t.Error("centers 10 apart with radii 10+10 must collide")
	}
}

func TestDragAndRelease(t *testing.T) {
	p := newTestPerson(t, 10)
	simulateUntil(p, 60, func() bool { return p.State() == StateFloating })
	if p.State() != StateFloating {
		t.Fatal("precondition: floating not reached")
	}

	if !p.BeginDrag(100.0) {
		t.Fatal("BeginDrag refused a floating person")
	}
	if p.State() != StateDragged {
		t.Fatalf("state = %v, want dragged", p.State())
	}

	// Steady pointer motion: 30 units of X over 0.1s => ~300 u/s, above cap
	p.DragTo(vmath.Vec3{X: p.Position().X + 30, Y: p.Body.RestHeight(), Z: p.Position().Z}, 100.1)
	p.EndDrag()

	if p.State() != StateFalling {
		t.Fatalf("state after release = %v, want falling", p.State())
	}
	if mag := vmath.V3Mag(p.Body.Vel); mag > parameter.DragImpulseMax+1e-9 {
		t.Errorf("release velocity %v exceeds cap %v", mag, parameter.DragImpulseMax)
	}
	if p.Body.Vel.X <= 0 {
		t.Errorf("release velocity should follow pointer motion, got %+v", p.Body.Vel)
	}
}

func TestBeginDragOnlyWhenFloating(t *testing.T) {
	p := newTestPerson(t, 10)
	if p.BeginDrag(0) {
		t.Error("BeginDrag must refuse a falling person")
	}
}

func TestExitIsTerminal(t *testing.T) {
	p := newTestPerson(t, 10)
	simulateUntil(p, 60, func() bool { return p.State() == StateFloating })

	startY := p.Position().Y
	var goneID uint64
	p.BeginExit(func(id uint64) { goneID = id })
	if p.State() != StateExiting {
		t.Fatalf("state = %v, want exiting", p.State())
	}

	elapsed := simulateUntil(p, 5, func() bool { return p.State() == StateGone })
	if p.State() != StateGone {
		t.Fatal("exit animation never completed")
	}
	if elapsed > parameter.ExitDuration+0.1 {
		t.Errorf("exit took %vs, want about %vs", elapsed, parameter.ExitDuration)
	}
	if goneID != p.ID() {
		t.Errorf("completion callback id = %d, want %d", goneID, p.ID())
	}
	if p.Alpha() != 0 {
		t.Errorf("final alpha = %v, want 0", p.Alpha())
	}
	if p.Position().Y <= startY {
		t.Error("exit animation did not rise")
	}

	// No further movement after gone
	pos := p.Position()
	p.Update(dt, 200)
	if p.Position() != pos {
		t.Error("gone person moved")
	}

	// Double-exit is a no-op
	p.BeginExit(func(uint64) { t.Error("second exit callback fired") })
}

func TestUpdateNonPositiveDelta(t *testing.T) {
	p := newTestPerson(t, 10)
	pos := p.Position()
	p.Update(0, 1)
	p.Update(-dt, 2)
	if p.Position() != pos {
		t.Error("non-positive dt moved the body")
	}
}
