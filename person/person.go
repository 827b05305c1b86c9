// Package person implements the simulated entity: a circular-footprint
// body that falls in under gravity, bounces, settles into a floating
// idle, optionally gets dragged around, and finally rises out and fades.
package person

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/crowd-drift/parameter"
	"github.com/lixenwraith/crowd-drift/physics"
	"github.com/lixenwraith/crowd-drift/tween"
	"github.com/lixenwraith/crowd-drift/vmath"
)

// Params configures a new person
// Spawn is the target resting center on the ground plane; the body
// materializes EntryDropHeight above it
type Params struct {
	ID          uint64
	Spawn       vmath.Vec3
	Size        float64
	Damping     float64
	Color       colorful.Color
	FloatSpeed  float64
	FloatAmp    float64
	FloatOffset float64
	GroundLevel float64
}

// Person owns one entity's physical state and lifecycle
type Person struct {
	id    uint64
	state State

	Body  physics.Body
	Color colorful.Color

	// Idle float animation, randomized once at spawn and constant after
	FloatSpeed  float64
	FloatAmp    float64
	FloatOffset float64

	// Rotation is the idle spin angle in radians, advanced while floating
	Rotation float64

	floatY float64
	alpha  float64

	settle   *tween.Tween
	exitRise *tween.Tween
	exitFade *tween.Tween
	onGone   func(id uint64)

	// Pointer motion sampling for the release impulse
	dragPrev   vmath.Vec3
	dragPrevAt float64
	dragVel    vmath.Vec3
}

// New validates parameters and creates a person in StateFalling
// Fails fast on non-positive or non-finite size so NaN never enters the
// integrator
func New(p Params) (*Person, error) {
	if p.Size <= 0 || math.IsNaN(p.Size) || math.IsInf(p.Size, 0) {
		return nil, fmt.Errorf("person: invalid size %v", p.Size)
	}
	if p.Damping < 0 || p.Damping > 1 || math.IsNaN(p.Damping) {
		return nil, fmt.Errorf("person: damping %v outside [0,1]", p.Damping)
	}
	if !vmath.IsFinite(p.Spawn) {
		return nil, fmt.Errorf("person: non-finite spawn position %+v", p.Spawn)
	}

	pr := &Person{
		id:          p.ID,
		state:       StateFalling,
		Color:       p.Color,
		FloatSpeed:  p.FloatSpeed,
		FloatAmp:    p.FloatAmp,
		FloatOffset: p.FloatOffset,
		alpha:       1.0,
		Body: physics.Body{
			Pos: vmath.Vec3{
				X: p.Spawn.X,
				Y: p.GroundLevel + p.Size + parameter.EntryDropHeight,
				Z: p.Spawn.Z,
			},
			Accel:       vmath.Vec3{Y: parameter.GravityY},
			Size:        p.Size,
			Damping:     p.Damping,
			GroundLevel: p.GroundLevel,
		},
	}
	return pr, nil
}

func (p *Person) ID() uint64 {
	return p.id
}

func (p *Person) State() State {
	return p.state
}

// Position returns the current physics position
func (p *Person) Position() vmath.Vec3 {
	return p.Body.Pos
}

// Alpha is the render opacity, 1 except during the exit fade
func (p *Person) Alpha() float64 {
	return p.alpha
}

// Footprint returns the ground-plane collision extent
func (p *Person) Footprint() physics.Footprint {
	return physics.Footprint{X: p.Body.Pos.X, Z: p.Body.Pos.Z, Radius: p.Body.Size}
}

// CollidesWith reports planar footprint overlap against another circle
// The single primitive the placement resolver composes
func (p *Person) CollidesWith(center vmath.Vec3, radius float64) bool {
	return p.Footprint().Overlaps(physics.Footprint{X: center.X, Z: center.Z, Radius: radius})
}

// VisualPosition is the rendered position: physics position lifted by the
// radius so the visual base sits at the contact point, plus the float
// oscillation while idle
func (p *Person) VisualPosition() vmath.Vec3 {
	v := p.Body.Pos
	v.Y += p.Body.Size + p.floatY
	return v
}

// Update advances one simulation tick
// dt is the frame delta in seconds (non-positive is a no-op); now is the
// shared wall-clock-derived time in seconds, never reset per person
func (p *Person) Update(dt, now float64) {
	if dt <= 0 {
		return
	}

	switch p.state {
	case StateFalling:
		bounced := physics.Step(&p.Body, dt)
		if bounced && physics.AtRest(&p.Body, parameter.RestVelocityThreshold) {
			p.beginSettle()
		}

	case StateSettling:
		p.Body.Pos.Y = p.settle.Update(dt)

	case StateFloating:
		p.floatY = p.FloatAmp * math.Sin(now*p.FloatSpeed+p.FloatOffset)
		p.Rotation += parameter.FloatRotationRate * dt

	case StateDragged:
		// Position is driven by DragTo between ticks

	case StateExiting:
		p.Body.Pos.Y = p.exitRise.Update(dt)
		p.alpha = p.exitFade.Update(dt)

	case StateGone:
		// Terminal; nothing moves
	}
}

// beginSettle starts the bounded entry-settle animation that confirms
// the floating state on completion
func (p *Person) beginSettle() {
	p.state = StateSettling
	p.Body.Vel = vmath.Vec3{}
	p.settle = tween.New(p.Body.Pos.Y, p.Body.RestHeight(), parameter.SettleDuration, vmath.EaseOutCubic).
		OnComplete(func() {
			p.Body.Pos.Y = p.Body.RestHeight()
			p.state = StateFloating
		})
}

// BeginDrag suspends floating and hands position control to the pointer
// Only a floating or settling person can be grabbed; returns false otherwise
func (p *Person) BeginDrag(now float64) bool {
	if p.state != StateFloating && p.state != StateSettling {
		return false
	}
	p.state = StateDragged
	p.floatY = 0
	p.dragPrev = p.Body.Pos
	p.dragPrevAt = now
	p.dragVel = vmath.Vec3{}
	return true
}

// DragTo moves the person to pointer-derived world coordinates and
// samples pointer velocity for the release impulse
func (p *Person) DragTo(pos vmath.Vec3, now float64) {
	if p.state != StateDragged {
		return
	}
	if elapsed := now - p.dragPrevAt; elapsed > 0 {
		p.dragVel = vmath.V3Scale(vmath.V3Sub(pos, p.dragPrev), 1/elapsed)
		p.dragPrev = pos
		p.dragPrevAt = now
	}
	p.Body.Pos = pos
	if p.Body.Pos.Y < p.Body.RestHeight() {
		p.Body.Pos.Y = p.Body.RestHeight()
	}
}

// EndDrag imparts the sampled pointer velocity, magnitude-capped, and
// re-enters the falling/settle behavior
func (p *Person) EndDrag() {
	if p.state != StateDragged {
		return
	}
	vel := p.dragVel
	if mag := vmath.V3Mag(vel); mag > parameter.DragImpulseMax {
		vel = vmath.V3Scale(vel, parameter.DragImpulseMax/mag)
	}
	p.Body.Vel = vel
	p.state = StateFalling
}

// BeginExit starts the terminal rise-and-fade transition
// onGone fires once when the animation completes so the caller can
// release rendering resources; safe to call from any live state
func (p *Person) BeginExit(onGone func(id uint64)) {
	if p.state == StateExiting || p.state == StateGone {
		return
	}
	p.state = StateExiting
	p.onGone = onGone
	p.floatY = 0
	p.Body.Vel = vmath.Vec3{}

	startY := p.Body.Pos.Y
	p.exitRise = tween.New(startY, startY+parameter.ExitRiseHeight, parameter.ExitDuration, vmath.EaseInQuad)
	p.exitFade = tween.New(1.0, 0.0, parameter.ExitDuration, vmath.EaseInQuad).
		OnComplete(func() {
			p.state = StateGone
			p.alpha = 0
			if p.onGone != nil {
				fn := p.onGone
				p.onGone = nil
				fn(p.id)
			}
		})
}
