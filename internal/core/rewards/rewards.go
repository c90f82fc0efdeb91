// Package rewards provides reference reward functions. Each matches the
// env.RewardFn contract: a pure function of (previous state, action, next
// state).
package rewards

import (
	"github.com/navix-rl/navix/internal/core/state"
)

// OnGoalReached pays 1.0 when the player stands on a goal cell after the
// transition, 0 otherwise.
func OnGoalReached(prev state.State, action int32, next state.State) float64 {
	if _, ok := next.OnGoal(next.PlayerPosition()); ok {
		return 1.0
	}
	return 0.0
}

// ActionCost charges a flat cost for every non-noop action.
func ActionCost(cost float64) func(state.State, int32, state.State) float64 {
	return func(prev state.State, action int32, next state.State) float64 {
		if action == 0 {
			return 0.0
		}
		return -cost
	}
}

// TimeCost charges a flat cost on every step.
func TimeCost(cost float64) func(state.State, int32, state.State) float64 {
	return func(state.State, int32, state.State) float64 {
		return -cost
	}
}

// Compose sums several reward functions into one.
func Compose(fns ...func(state.State, int32, state.State) float64) func(state.State, int32, state.State) float64 {
	return func(prev state.State, action int32, next state.State) float64 {
		total := 0.0
		for _, fn := range fns {
			total += fn(prev, action, next)
		}
		return total
	}
}
