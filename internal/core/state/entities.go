package state

import (
	"github.com/navix-rl/navix/internal/core/grid"
)

// Kind tags the entity batch a grid cell id belongs to.
type Kind int32

// Entity kinds. KindNone is never stored in a cell id.
const (
	KindNone Kind = iota
	KindPlayer
	KindGoal
	KindPickable
	KindConsumable
)

// Pocket and tool sentinels.
const (
	// EmptyPocket is the pocket value when the player carries nothing.
	EmptyPocket int32 = 0
	// NoTool marks a consumable that needs no tool.
	NoTool int32 = -1
)

// CellIDFor encodes an entity reference as a grid cell id: kind in the
// high 16 bits, 1-based batch slot in the low 16. Cell ids therefore
// resolve to a batch slot without any lookup table.
func CellIDFor(kind Kind, slot int) grid.CellID {
	return grid.CellID(int32(kind)<<16 | int32(slot+1))
}

// KindOf returns the entity kind encoded in a cell id, or KindNone for
// floor and wall cells.
func KindOf(id grid.CellID) Kind {
	if id <= grid.Floor {
		return KindNone
	}
	return Kind(int32(id) >> 16)
}

// SlotOf returns the batch slot encoded in a cell id. Only valid for
// positive entity cell ids.
func SlotOf(id grid.CellID) int {
	return int(int32(id)&0xffff) - 1
}

// PlayerBatch holds N players as parallel arrays. The engine currently
// places exactly one, but the shape keeps batched processing uniform.
type PlayerBatch struct {
	Position  []grid.Position `json:"position"`
	Direction []int32         `json:"direction"`
	Pocket    []int32         `json:"pocket"`
}

// Len returns the batch size.
func (b PlayerBatch) Len() int { return len(b.Position) }

// Clone deep-copies the batch.
func (b PlayerBatch) Clone() PlayerBatch {
	return PlayerBatch{
		Position:  append([]grid.Position(nil), b.Position...),
		Direction: append([]int32(nil), b.Direction...),
		Pocket:    append([]int32(nil), b.Pocket...),
	}
}

// GoalBatch holds N goals. Probability is the chance that reaching the
// goal ends the episode; 1.0 is a deterministic goal.
type GoalBatch struct {
	Position    []grid.Position `json:"position"`
	Probability []float64       `json:"probability"`
}

// Len returns the batch size.
func (b GoalBatch) Len() int { return len(b.Position) }

// Clone deep-copies the batch.
func (b GoalBatch) Clone() GoalBatch {
	return GoalBatch{
		Position:    append([]grid.Position(nil), b.Position...),
		Probability: append([]float64(nil), b.Probability...),
	}
}

// PickableBatch holds N pickable items (keys, coins). ID is the item
// identity carried in the player's pocket, distinct from the cell id.
type PickableBatch struct {
	Position []grid.Position `json:"position"`
	ID       []int32         `json:"id"`
}

// Len returns the batch size.
func (b PickableBatch) Len() int { return len(b.Position) }

// Clone deep-copies the batch.
func (b PickableBatch) Clone() PickableBatch {
	return PickableBatch{
		Position: append([]grid.Position(nil), b.Position...),
		ID:       append([]int32(nil), b.ID...),
	}
}

// ConsumableBatch holds N consumables (doors, food). Requires is the item
// id needed to consume, NoTool if none; Replacement is the cell value left
// behind after consumption, floor by default.
type ConsumableBatch struct {
	Position    []grid.Position `json:"position"`
	Requires    []int32         `json:"requires"`
	Replacement []grid.CellID   `json:"replacement"`
}

// Len returns the batch size.
func (b ConsumableBatch) Len() int { return len(b.Position) }

// Clone deep-copies the batch.
func (b ConsumableBatch) Clone() ConsumableBatch {
	return ConsumableBatch{
		Position:    append([]grid.Position(nil), b.Position...),
		Requires:    append([]int32(nil), b.Requires...),
		Replacement: append([]grid.CellID(nil), b.Replacement...),
	}
}
