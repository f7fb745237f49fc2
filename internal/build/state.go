package build

// State is a step in the per-descriptor pipeline:
//
//	Start → ToolingVerified → Configured → Built → [Relocated] → Done
//
// Any step may instead transition to Failed, which is terminal.
type State int

const (
	StateStart State = iota
	StateToolingVerified
	StateConfigured
	StateBuilt
	StateRelocated
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateToolingVerified:
		return "tooling-verified"
	case StateConfigured:
		return "configured"
	case StateBuilt:
		return "built"
	case StateRelocated:
		return "relocated"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records what happened to one descriptor.
type Result struct {
	Name          string
	Configuration Configuration
	BuildDir      string
	Relocated     []string
	Trail         []State
	Err           error
}

// State returns the last state reached.
func (r *Result) State() State {
	if len(r.Trail) == 0 {
		return StateStart
	}
	return r.Trail[len(r.Trail)-1]
}

func (r *Result) advance(s State) {
	r.Trail = append(r.Trail, s)
}

func (r *Result) fail(err error) error {
	r.Err = err
	r.advance(StateFailed)
	return err
}
