package alert

// State is an alert's position in its presentation lifecycle.
type State int

const (
	StateCreated State = iota
	StatePresenting
	StateShown
	StateDismissing
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StatePresenting:
		return "presenting"
	case StateShown:
		return "shown"
	case StateDismissing:
		return "dismissing"
	case StateDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Visible reports whether the alert is attached to its surface.
func (s State) Visible() bool {
	return s == StatePresenting || s == StateShown || s == StateDismissing
}

// DismissReason records what ended a presentation.
type DismissReason int

const (
	ReasonNone DismissReason = iota
	ReasonButton
	ReasonTimeout
	ReasonBackground
	ReasonClose
)

func (r DismissReason) String() string {
	switch r {
	case ReasonButton:
		return "button"
	case ReasonTimeout:
		return "timeout"
	case ReasonBackground:
		return "background"
	case ReasonClose:
		return "close"
	default:
		return "none"
	}
}
