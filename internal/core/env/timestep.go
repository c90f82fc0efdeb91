package env

import (
	"github.com/navix-rl/navix/internal/core/state"
)

// Timestep is the externally observable output of reset and step. It is
// owned by the caller between calls; the engine keeps no reference to it.
type Timestep struct {
	// T is the episode-local step counter, 0 at reset.
	T int32 `json:"t"`
	// Observation is the output of the configured observation function.
	Observation []float64 `json:"observation"`
	// Action is the action id last applied. Meaningless at T == 0.
	Action int32 `json:"action"`
	// Reward is the reward produced by this step, 0 at reset.
	Reward float64 `json:"reward"`
	// StepType classifies the step within the episode.
	StepType StepType `json:"step_type"`
	// State is the world snapshot after this step.
	State state.State `json:"state"`
	// Info is an open side channel; ordering is irrelevant.
	Info map[string]any `json:"info,omitempty"`
}
