// Package terminations provides reference termination predicates matching
// the env.TerminationFn contract.
package terminations

import (
	"github.com/navix-rl/navix/internal/core/state"
)

// goalSalt separates the bernoulli draws of stochastic goals from other
// consumers folding off the same state key.
const goalSalt = 0x60a1

// OnGoalReached ends the episode when the player stands on a goal after
// the transition. A goal with probability < 1 terminates stochastically:
// the bernoulli draw is derived from the next state's key and the goal
// slot, so the predicate stays a pure function of its inputs.
func OnGoalReached(prev state.State, action int32, next state.State) bool {
	slot, ok := next.OnGoal(next.PlayerPosition())
	if !ok {
		return false
	}
	p := next.Goals.Probability[slot]
	if p >= 1.0 {
		return true
	}
	return next.Key.Fold(uint64(goalSalt+slot)).Float64() < p
}
