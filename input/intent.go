// Package input translates raw tcell events into simulation intents so
// the main loop never touches key codes or mouse masks directly.
package input

// IntentType identifies what the user asked for
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentPan
	IntentZoom
	IntentAddPerson
	IntentDragBegin
	IntentDragMove
	IntentDragEnd
	IntentResize
	IntentToggleAudio
)

// Intent is one decoded user action. Pan carries a unit direction,
// Zoom a multiplicative factor, drag intents the pointer cell
type Intent struct {
	Type IntentType

	// Pan direction in screen-space units (column, row)
	DX, DY float64

	// Zoom multiplier applied to the camera target
	Factor float64

	// Pointer cell for drag intents
	Col, Row int
}
