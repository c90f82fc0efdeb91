// Package env implements the episode state-transition engine: the
// step/reset protocol, the action table, and the termination/truncation
// bookkeeping. Everything here is pure; the same logic drives a single
// simulation or an arbitrary batch of independent ones.
package env

import (
	"github.com/navix-rl/navix/internal/core/state"
	"github.com/navix-rl/navix/internal/errors"
	"github.com/navix-rl/navix/internal/pkg/prng"
)

// ObservationFn encodes a state into a fixed-shape observation.
type ObservationFn func(state.State) []float64

// RewardFn scores a transition (previous state, action, next state).
type RewardFn func(prev state.State, action int32, next state.State) float64

// TerminationFn decides whether a transition ends the episode.
type TerminationFn func(prev state.State, action int32, next state.State) bool

// Environment drives episodes for one configured layout.
type Environment interface {
	// Reset starts a fresh episode from a seed key. Equal keys yield
	// equal timesteps.
	Reset(key prng.Key) (Timestep, error)
	// Step advances one transition, or transparently resets if the
	// previous timestep ended the episode.
	Step(ts Timestep, action int32) (Timestep, error)
}

// Config holds the parameters shared by every environment variant.
type Config struct {
	Height   int
	Width    int
	MaxSteps int
	// Gamma is the episode discount, recorded for downstream consumers.
	Gamma float64
	// RandomStart places player and goal at random interior cells
	// instead of the canonical corners.
	RandomStart bool

	Observation ObservationFn
	Reward      RewardFn
	Termination TerminationFn

	// Actions overrides the action table; defaults to DefaultActions.
	Actions []Action
}

// Validate ensures the configuration describes a runnable environment.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Height < 3 {
		vb.InvalidField("Height", "must be at least 3")
	}
	if c.Width < 3 {
		vb.InvalidField("Width", "must be at least 3")
	}
	if c.MaxSteps <= 0 {
		vb.InvalidField("MaxSteps", "must be positive")
	}
	if c.Observation == nil {
		vb.RequiredField("Observation")
	}
	if c.Reward == nil {
		vb.RequiredField("Reward")
	}
	if c.Termination == nil {
		vb.RequiredField("Termination")
	}

	return vb.Build()
}

// combineStepType applies the termination-over-truncation priority rule.
func combineStepType(terminated, truncated bool) StepType {
	switch {
	case terminated:
		return Termination
	case truncated:
		return Truncation
	default:
		return Transition
	}
}

// step runs the shared per-transition state machine. reset is the
// variant's own reset, used for the auto-reset path.
func step(cfg Config, actions []Action, reset func(prng.Key) (Timestep, error), ts Timestep, action int32) (Timestep, error) {
	// Auto-reset: a non-transition timestep already ended the episode.
	// The supplied action is ignored and the new episode is re-seeded
	// from the token carried inside the previous state.
	if ts.StepType.Last() {
		return reset(ts.State.Key)
	}

	prev := ts.State
	next := lookup(actions, action)(prev)

	terminated := cfg.Termination(prev, action, next)
	truncated := int(ts.T)+1 >= cfg.MaxSteps

	return Timestep{
		T:           ts.T + 1,
		Observation: cfg.Observation(next),
		Action:      action,
		Reward:      cfg.Reward(prev, action, next),
		StepType:    combineStepType(terminated, truncated),
		State:       next,
	}, nil
}
