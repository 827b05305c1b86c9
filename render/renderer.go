// Package render draws the crowd onto a tcell screen: projected person
// glyphs sized by apparent radius, an exit fade, and a status bar with
// the population counters.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/crowd-drift/person"
	"github.com/lixenwraith/crowd-drift/world"
)

// Renderer owns the screen and per-frame drawing
type Renderer struct {
	screen tcell.Screen
	width  int
	height int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{screen: screen, width: w, height: h}
}

// Resize updates the cached viewport dimensions
func (r *Renderer) Resize(w, h int) {
	r.width = w
	r.height = h
}

// Size returns the current viewport in cells
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Frame clears, draws every person and the status bar, and shows
func (r *Renderer) Frame(w *world.World) {
	r.screen.Clear()

	cam := w.Camera()
	for _, p := range w.People() {
		r.drawPerson(cam, p)
	}
	r.drawStatusBar(w)

	r.screen.Show()
}

// drawPerson projects one person and stamps a glyph block scaled to its
// apparent footprint
func (r *Renderer) drawPerson(cam *world.Camera, p *person.Person) {
	col, row := WorldToScreen(cam, r.width, r.height, p.VisualPosition())
	if col < 0 || col >= r.width || row < 0 || row >= r.height-1 {
		return
	}

	style := tcell.StyleDefault.Foreground(personColor(p))

	// Apparent radius in cells decides the glyph footprint
	apparent := p.Body.Size * cam.Zoom
	switch {
	case apparent < 12:
		r.screen.SetContent(col, row, glyphFor(p), nil, style)
	case apparent < 24:
		r.screen.SetContent(col-1, row, '(', nil, style)
		r.screen.SetContent(col, row, glyphFor(p), nil, style)
		r.screen.SetContent(col+1, row, ')', nil, style)
	default:
		r.screen.SetContent(col-2, row, '(', nil, style)
		r.screen.SetContent(col-1, row, '(', nil, style)
		r.screen.SetContent(col, row, glyphFor(p), nil, style)
		r.screen.SetContent(col+1, row, ')', nil, style)
		r.screen.SetContent(col+2, row, ')', nil, style)
	}
}

// glyphFor picks the center rune by lifecycle state
func glyphFor(p *person.Person) rune {
	switch p.State() {
	case person.StateFalling:
		return 'o'
	case person.StateDragged:
		return '#'
	case person.StateExiting:
		return '*'
	default:
		return '@'
	}
}

// personColor fades the person's color toward the background by its
// exit alpha
func personColor(p *person.Person) tcell.Color {
	c := p.Color
	a := p.Alpha()
	faded := colorful.Color{R: c.R * a, G: c.G * a, B: c.B * a}
	cr, cg, cb := faded.RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

// drawStatusBar writes the population counters and view state on the
// bottom row
func (r *Renderer) drawStatusBar(w *world.World) {
	cam := w.Camera()
	text := fmt.Sprintf(
		" people %d  joined %d  zoom %.2f  cam (%.0f, %.0f)  [arrows pan  +/- zoom  mouse drag  a add  q quit]",
		w.Count(), w.Counter(), cam.Zoom, cam.X, cam.Z,
	)

	style := tcell.StyleDefault.Reverse(true)
	row := r.height - 1
	for col := 0; col < r.width; col++ {
		ch := ' '
		if col < len(text) {
			ch = rune(text[col])
		}
		r.screen.SetContent(col, row, ch, nil, style)
	}
}
