package workflow

// PhaseKind is the stage of a remote request.
type PhaseKind int

const (
	// PhaseIdle means no request has been made yet.
	PhaseIdle PhaseKind = iota
	// PhaseInFlight means a request is waiting for its response.
	PhaseInFlight
	// PhaseSucceeded means the last request succeeded.
	PhaseSucceeded
	// PhaseFailed means the last request failed.
	PhaseFailed
)

// String returns the human-readable name of the phase kind.
func (k PhaseKind) String() string {
	switch k {
	case PhaseIdle:
		return "Idle"
	case PhaseInFlight:
		return "InFlight"
	case PhaseSucceeded:
		return "Succeeded"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Phase tracks one asynchronous workflow. Message is set only when Failed.
type Phase struct {
	Kind    PhaseKind
	Message string
}

// InFlight reports whether a request is outstanding.
func (p Phase) InFlight() bool {
	return p.Kind == PhaseInFlight
}

func inFlight() Phase {
	return Phase{Kind: PhaseInFlight}
}

func succeeded() Phase {
	return Phase{Kind: PhaseSucceeded}
}

func failed(msg string) Phase {
	return Phase{Kind: PhaseFailed, Message: msg}
}
