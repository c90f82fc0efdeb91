// Package observations provides reference observation encoders matching
// the env.ObservationFn contract. Observations are fixed-shape float
// arrays so alternative encoders (tabular ids, pixels) fit the same
// interface.
package observations

import (
	"github.com/navix-rl/navix/internal/core/grid"
	"github.com/navix-rl/navix/internal/core/state"
)

// Symbolic tags, one per cell of the flattened grid.
const (
	TagFloor      = 0.0
	TagWall       = 1.0
	TagGoal       = 2.0
	TagPickable   = 3.0
	TagConsumable = 4.0
	TagPlayer     = 5.0
)

// Symbolic encodes the full grid as entity tags with the player drawn on
// top, followed by the player's heading. Shape is height*width + 1.
func Symbolic(s state.State) []float64 {
	h, w := s.Grid.Height(), s.Grid.Width()
	out := make([]float64, 0, int(h*w)+1)

	playerPos := s.PlayerPosition()
	for r := int32(0); r < h; r++ {
		for c := int32(0); c < w; c++ {
			p := grid.Position{Row: r, Col: c}
			if p == playerPos {
				out = append(out, TagPlayer)
				continue
			}
			out = append(out, tag(s.Grid.At(p)))
		}
	}
	return append(out, float64(s.PlayerDirection()))
}

func tag(id grid.CellID) float64 {
	switch {
	case id == grid.Wall:
		return TagWall
	case id == grid.Floor:
		return TagFloor
	default:
		switch state.KindOf(id) {
		case state.KindGoal:
			return TagGoal
		case state.KindPickable:
			return TagPickable
		case state.KindConsumable:
			return TagConsumable
		default:
			return TagFloor
		}
	}
}
