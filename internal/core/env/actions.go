package env

import (
	"fmt"

	"github.com/navix-rl/navix/internal/core/grid"
	"github.com/navix-rl/navix/internal/core/state"
)

// Compass headings. Rotating clockwise increments the heading mod 4.
const (
	DirEast int32 = iota
	DirSouth
	DirWest
	DirNorth
)

// Action ids index into DefaultActions. Reset reports action 0, so id 0
// must stay the no-op.
const (
	ActionNoop int32 = iota
	ActionRotateCCW
	ActionRotateCW
	ActionForward
	ActionPickup
	ActionConsume
)

// Action is one agent capability: a pure transition from state to state.
// Illegal moves (walking into a wall, consuming without the right tool)
// are state-preserving no-ops, not errors.
type Action func(state.State) state.State

// DefaultActions is the reference action table, indexed by action id.
var DefaultActions = []Action{
	Noop,
	RotateCCW,
	RotateCW,
	Forward,
	Pickup,
	Consume,
}

var deltas = [4]grid.Position{
	{Row: 0, Col: 1},  // east
	{Row: 1, Col: 0},  // south
	{Row: 0, Col: -1}, // west
	{Row: -1, Col: 0}, // north
}

// Ahead returns the cell the player is facing.
func Ahead(s state.State) grid.Position {
	p := s.PlayerPosition()
	d := deltas[s.PlayerDirection()]
	return grid.Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Noop leaves the state unchanged.
func Noop(s state.State) state.State {
	return s
}

// RotateCCW turns the player counter-clockwise.
func RotateCCW(s state.State) state.State {
	return s.WithPlayerDirection((s.PlayerDirection() + 3) % 4)
}

// RotateCW turns the player clockwise.
func RotateCW(s state.State) state.State {
	return s.WithPlayerDirection((s.PlayerDirection() + 1) % 4)
}

// Forward moves the player one cell ahead. Walls (including anything out
// of bounds), pickables, and consumables block; goal cells are walkable.
func Forward(s state.State) state.State {
	target := Ahead(s)
	cell := s.Grid.At(target)
	if cell != grid.Floor && state.KindOf(cell) != state.KindGoal {
		return s
	}
	return s.WithPlayerPosition(target)
}

// Pickup takes the item the player faces into the pocket. No-op unless
// the faced cell holds a pickable and the pocket is empty. The grid cell
// and the batch slot are cleared in the same transition.
func Pickup(s state.State) state.State {
	target := Ahead(s)
	cell := s.Grid.At(target)
	if state.KindOf(cell) != state.KindPickable || s.PlayerPocket() != state.EmptyPocket {
		return s
	}
	slot := state.SlotOf(cell)
	return s.
		WithPlayerPocket(s.Pickables.ID[slot]).
		WithoutPickable(slot).
		WithGrid(s.Grid.Set(target, grid.Floor))
}

// Consume consumes the entity the player faces, gated on the required
// tool. On success the cell is replaced by the consumable's replacement
// value and the entity is removed; otherwise no-op. The pocket is not
// emptied: a key opens any number of doors.
func Consume(s state.State) state.State {
	target := Ahead(s)
	cell := s.Grid.At(target)
	if state.KindOf(cell) != state.KindConsumable {
		return s
	}
	slot := state.SlotOf(cell)
	required := s.Consumables.Requires[slot]
	if required != state.NoTool && required != s.PlayerPocket() {
		return s
	}
	return s.
		WithoutConsumable(slot).
		WithGrid(s.Grid.Set(target, s.Consumables.Replacement[slot]))
}

// lookup resolves an action id against a table. Selection must be total:
// an out-of-range id is a programming defect, not a runtime condition.
func lookup(table []Action, action int32) Action {
	if action < 0 || int(action) >= len(table) {
		panic(fmt.Sprintf("env: action id %d out of range [0,%d)", action, len(table)))
	}
	return table[action]
}
