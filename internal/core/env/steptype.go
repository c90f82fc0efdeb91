package env

// StepType classifies a Timestep within the episode state machine.
type StepType int32

const (
	// Transition means the episode continues (discount > 0).
	Transition StepType = 0
	// Truncation means the episode hit its step limit (discount > 0).
	Truncation StepType = 1
	// Termination means the episode ended for real (discount == 0).
	Termination StepType = 2
)

// String returns a human-readable name for the step type.
func (t StepType) String() string {
	switch t {
	case Transition:
		return "transition"
	case Truncation:
		return "truncation"
	case Termination:
		return "termination"
	default:
		return "unknown"
	}
}

// Last reports whether this step ended the episode.
func (t StepType) Last() bool {
	return t != Transition
}
