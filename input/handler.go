package input

import (
	"github.com/gdamore/tcell/v2"
)

// Zoom steps for keyboard and wheel
const (
	zoomInFactor  = 1.25
	zoomOutFactor = 0.8
)

// Handler decodes tcell events into intents. It tracks the primary
// mouse button across events to distinguish drag begin, move, and end
type Handler struct {
	buttonDown bool
}

func NewHandler() *Handler {
	return &Handler{}
}

// HandleEvent decodes a single event. Unrecognized events yield
// IntentNone
func (h *Handler) HandleEvent(ev tcell.Event) Intent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(e)
	case *tcell.EventMouse:
		return h.handleMouse(e)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (h *Handler) handleKey(e *tcell.EventKey) Intent {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyUp:
		return Intent{Type: IntentPan, DY: -1}
	case tcell.KeyDown:
		return Intent{Type: IntentPan, DY: 1}
	case tcell.KeyLeft:
		return Intent{Type: IntentPan, DX: -1}
	case tcell.KeyRight:
		return Intent{Type: IntentPan, DX: 1}
	case tcell.KeyRune:
		return h.handleRune(e.Rune())
	}
	return Intent{}
}

func (h *Handler) handleRune(r rune) Intent {
	switch r {
	case 'q', 'Q':
		return Intent{Type: IntentQuit}
	case 'h':
		return Intent{Type: IntentPan, DX: -1}
	case 'l':
		return Intent{Type: IntentPan, DX: 1}
	case 'k':
		return Intent{Type: IntentPan, DY: -1}
	case 'j':
		return Intent{Type: IntentPan, DY: 1}
	case '+', '=':
		return Intent{Type: IntentZoom, Factor: zoomInFactor}
	case '-', '_':
		return Intent{Type: IntentZoom, Factor: zoomOutFactor}
	case 'a', 'A':
		return Intent{Type: IntentAddPerson}
	case 'm', 'M':
		return Intent{Type: IntentToggleAudio}
	}
	return Intent{}
}

func (h *Handler) handleMouse(e *tcell.EventMouse) Intent {
	col, row := e.Position()
	buttons := e.Buttons()

	if buttons&tcell.WheelUp != 0 {
		return Intent{Type: IntentZoom, Factor: zoomInFactor}
	}
	if buttons&tcell.WheelDown != 0 {
		return Intent{Type: IntentZoom, Factor: zoomOutFactor}
	}

	primary := buttons&tcell.Button1 != 0
	switch {
	case primary && !h.buttonDown:
		h.buttonDown = true
		return Intent{Type: IntentDragBegin, Col: col, Row: row}
	case primary && h.buttonDown:
		return Intent{Type: IntentDragMove, Col: col, Row: row}
	case !primary && h.buttonDown:
		h.buttonDown = false
		return Intent{Type: IntentDragEnd, Col: col, Row: row}
	}
	return Intent{}
}
