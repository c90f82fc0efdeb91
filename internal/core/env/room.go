package env

import (
	"github.com/navix-rl/navix/internal/core/grid"
	"github.com/navix-rl/navix/internal/core/state"
	"github.com/navix-rl/navix/internal/errors"
	"github.com/navix-rl/navix/internal/pkg/prng"
)

// Room is the reference environment variant: a single walled room with one
// player and one goal. With RandomStart the placements and the player's
// heading are drawn from the seed key; otherwise the player starts at
// (1,1) facing east and the goal sits at (H-2, W-2).
type Room struct {
	cfg     Config
	actions []Action
}

// NewRoom builds a Room environment from a validated config.
func NewRoom(cfg *Config) (*Room, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	actions := cfg.Actions
	if actions == nil {
		actions = DefaultActions
	}

	return &Room{cfg: *cfg, actions: actions}, nil
}

// Config returns the environment configuration.
func (e *Room) Config() Config {
	return e.cfg
}

// Reset starts a new episode. The seed key is split into a carry token
// (stored in the state for future auto-resets) and one child per
// stochastic placement decision.
func (e *Room) Reset(key prng.Key) (Timestep, error) {
	keys := key.Split(3)
	carry, posKey, dirKey := keys[0], keys[1], keys[2]

	g, err := grid.Room(e.cfg.Height, e.cfg.Width)
	if err != nil {
		return Timestep{}, err
	}

	var playerPos, goalPos grid.Position
	var direction int32
	if e.cfg.RandomStart {
		positions, err := grid.RandomPositions(posKey, g, 2)
		if err != nil {
			return Timestep{}, err
		}
		playerPos, goalPos = positions[0], positions[1]
		direction = grid.RandomDirections(dirKey, 1)[0]
	} else {
		playerPos = grid.Position{Row: 1, Col: 1}
		goalPos = grid.Position{Row: int32(e.cfg.Height) - 2, Col: int32(e.cfg.Width) - 2}
		direction = DirEast
	}

	g = g.Set(goalPos, state.CellIDFor(state.KindGoal, 0))

	s := state.State{
		Key:  carry,
		Grid: g,
		Players: state.PlayerBatch{
			Position:  []grid.Position{playerPos},
			Direction: []int32{direction},
			Pocket:    []int32{state.EmptyPocket},
		},
		Goals: state.GoalBatch{
			Position:    []grid.Position{goalPos},
			Probability: []float64{1.0},
		},
	}
	if err := s.Validate(); err != nil {
		return Timestep{}, errors.Wrap(err, "reset produced inconsistent state")
	}

	return Timestep{
		T:           0,
		Observation: e.cfg.Observation(s),
		Action:      ActionNoop,
		Reward:      0.0,
		StepType:    Transition,
		State:       s,
	}, nil
}

// Step advances the episode state machine by one call.
func (e *Room) Step(ts Timestep, action int32) (Timestep, error) {
	return step(e.cfg, e.actions, e.Reset, ts, action)
}

// UniqueStates returns the number of distinct observable configurations,
// for sizing tabular value functions.
func (e *Room) UniqueStates() int {
	interior := (e.cfg.Height - 2) * (e.cfg.Width - 2)
	playerStates := interior * 4
	if e.cfg.RandomStart {
		return playerStates * interior
	}
	return playerStates
}

// TabularObservation reduces a state to an integer that uniquely
// identifies it within UniqueStates, for tabular learners. It assumes the
// Room layout: a single goal and a player on interior cells.
func (e *Room) TabularObservation(s state.State) int {
	width := int32(e.cfg.Width) - 2

	p := s.PlayerPosition()
	playerIndex := int((p.Row-1)*width + (p.Col - 1))
	playerIndex = playerIndex*4 + int(s.PlayerDirection())

	if !e.cfg.RandomStart {
		return playerIndex
	}

	g := s.Goals.Position[0]
	goalIndex := int((g.Row-1)*width + (g.Col - 1))
	playerStates := (e.cfg.Height - 2) * (e.cfg.Width - 2) * 4
	return goalIndex*playerStates + playerIndex
}
