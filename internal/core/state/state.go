// Package state defines the Markovian world snapshot: the occupancy grid
// plus batched entity records, keyed together by encoded cell ids.
//
// State and all batches are immutable value types. Mutators return a new
// State and copy only the arrays they touch, so a transition never aliases
// mutable data with its predecessor.
package state

import (
	"github.com/navix-rl/navix/internal/core/grid"
	"github.com/navix-rl/navix/internal/errors"
	"github.com/navix-rl/navix/internal/pkg/prng"
)

// State is the complete world snapshot between two steps.
type State struct {
	// Key is the random-source token carried across steps. It is only
	// advanced by explicit splitting, never mutated in place.
	Key prng.Key `json:"key"`

	Grid        grid.Grid       `json:"grid"`
	Players     PlayerBatch     `json:"players"`
	Goals       GoalBatch       `json:"goals"`
	Pickables   PickableBatch   `json:"pickables"`
	Consumables ConsumableBatch `json:"consumables"`
}

// PlayerPosition returns the position of the single player.
func (s State) PlayerPosition() grid.Position {
	return s.Players.Position[0]
}

// PlayerDirection returns the heading of the single player.
func (s State) PlayerDirection() int32 {
	return s.Players.Direction[0]
}

// PlayerPocket returns the carried item id, EmptyPocket if none.
func (s State) PlayerPocket() int32 {
	return s.Players.Pocket[0]
}

// WithKey returns a copy of the state carrying a new random-source token.
func (s State) WithKey(key prng.Key) State {
	s.Key = key
	return s
}

// WithGrid returns a copy of the state with a replaced grid.
func (s State) WithGrid(g grid.Grid) State {
	s.Grid = g
	return s
}

// WithPlayerPosition returns a copy with the player moved.
func (s State) WithPlayerPosition(p grid.Position) State {
	players := s.Players.Clone()
	players.Position[0] = p
	s.Players = players
	return s
}

// WithPlayerDirection returns a copy with the player turned.
func (s State) WithPlayerDirection(d int32) State {
	players := s.Players.Clone()
	players.Direction[0] = d
	s.Players = players
	return s
}

// WithPlayerPocket returns a copy with the pocket replaced.
func (s State) WithPlayerPocket(id int32) State {
	players := s.Players.Clone()
	players.Pocket[0] = id
	s.Players = players
	return s
}

// WithoutPickable returns a copy with the pickable at slot removed from
// the world (its position set to Nowhere). The caller clears the grid
// cell in the same transition to keep grid and batches in sync.
func (s State) WithoutPickable(slot int) State {
	pickables := s.Pickables.Clone()
	pickables.Position[slot] = grid.Nowhere
	s.Pickables = pickables
	return s
}

// WithoutConsumable returns a copy with the consumable at slot removed
// from the world. As with WithoutPickable, the grid cell is replaced in
// the same transition.
func (s State) WithoutConsumable(slot int) State {
	consumables := s.Consumables.Clone()
	consumables.Position[slot] = grid.Nowhere
	s.Consumables = consumables
	return s
}

// OnGoal reports whether p is a live goal cell and, if so, which slot.
func (s State) OnGoal(p grid.Position) (int, bool) {
	for i := 0; i < s.Goals.Len(); i++ {
		if s.Goals.Position[i] == p {
			return i, true
		}
	}
	return 0, false
}

// Validate checks the structural invariants: parallel arrays inside each
// batch agree on length, exactly one player exists, and every positive
// grid cell id decodes to a live batch slot.
func (s State) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.Players.Len() != 1 {
		vb.Fieldf("Players", "expected exactly one player, got %d", s.Players.Len())
	}
	if len(s.Players.Direction) != s.Players.Len() || len(s.Players.Pocket) != s.Players.Len() {
		vb.InvalidField("Players", "parallel arrays disagree on length")
	}
	if len(s.Goals.Probability) != s.Goals.Len() {
		vb.InvalidField("Goals", "parallel arrays disagree on length")
	}
	if len(s.Pickables.ID) != s.Pickables.Len() {
		vb.InvalidField("Pickables", "parallel arrays disagree on length")
	}
	if len(s.Consumables.Requires) != s.Consumables.Len() ||
		len(s.Consumables.Replacement) != s.Consumables.Len() {
		vb.InvalidField("Consumables", "parallel arrays disagree on length")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	for r := int32(0); r < s.Grid.Height(); r++ {
		for c := int32(0); c < s.Grid.Width(); c++ {
			p := grid.Position{Row: r, Col: c}
			id := s.Grid.At(p)
			if id <= grid.Floor {
				continue
			}
			if !s.cellResolves(id, p) {
				return errors.Internalf("grid cell %v holds id %d with no live entity", p, id)
			}
		}
	}
	return nil
}

func (s State) cellResolves(id grid.CellID, p grid.Position) bool {
	slot := SlotOf(id)
	switch KindOf(id) {
	case KindGoal:
		return slot < s.Goals.Len() && s.Goals.Position[slot] == p
	case KindPickable:
		return slot < s.Pickables.Len() && s.Pickables.Position[slot] == p
	case KindConsumable:
		return slot < s.Consumables.Len() && s.Consumables.Position[slot] == p
	case KindPlayer:
		return slot < s.Players.Len() && s.Players.Position[slot] == p
	default:
		return false
	}
}
