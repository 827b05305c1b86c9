package person

// State is the single tagged lifecycle variant for a person
// Transitions happen only through Person methods, so flag combinations
// like "simulating and floating at once" are unrepresentable
type State uint8

const (
	// StateFalling runs gravity integration and ground bounces
	StateFalling State = iota

	// StateSettling is the bounded eased approach to resting height
	// after the bounce phase ends
	StateSettling

	// StateFloating is the idle sine oscillation over the resting height
	StateFloating

	// StateDragged tracks pointer-derived world coordinates
	StateDragged

	// StateExiting is the terminal rise-and-fade animation
	StateExiting

	// StateGone means the exit animation finished; no further updates
	StateGone
)

func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateSettling:
		return "settling"
	case StateFloating:
		return "floating"
	case StateDragged:
		return "dragged"
	case StateExiting:
		return "exiting"
	case StateGone:
		return "gone"
	default:
		return "unknown"
	}
}
