// Package grid provides the 2-D occupancy map underlying every environment.
//
// A Grid is an immutable value: mutation goes through Set, which returns a
// fresh copy. Cell values are CellIDs; 0 is walkable floor, -1 is wall, and
// positive ids reference entity batch slots (see the state package for the
// encoding).
package grid

import (
	"github.com/navix-rl/navix/internal/errors"
	"github.com/navix-rl/navix/internal/pkg/prng"
)

// CellID is the value stored in one grid cell.
type CellID int32

// Reserved cell values. Positive ids belong to entities.
const (
	Floor CellID = 0
	Wall  CellID = -1
)

// Position is a (row, col) coordinate on the grid.
type Position struct {
	Row int32 `json:"row"`
	Col int32 `json:"col"`
}

// Nowhere is the position of an entity that is not placed on the grid.
var Nowhere = Position{Row: -1, Col: -1}

// Grid is a fixed-shape rectangular occupancy map.
type Grid struct {
	height int32
	width  int32
	cells  []CellID // row-major, len == height*width
}

// Room builds a grid with a 1-cell wall border and a floor interior.
// Height and width must both be at least 3 so an interior remains.
func Room(height, width int) (Grid, error) {
	if height < 3 || width < 3 {
		return Grid{}, errors.InvalidArgumentf(
			"room must be at least 3x3 to have an interior, got %dx%d", height, width)
	}

	g := Grid{
		height: int32(height),
		width:  int32(width),
		cells:  make([]CellID, height*width),
	}
	for r := int32(0); r < g.height; r++ {
		for c := int32(0); c < g.width; c++ {
			if r == 0 || c == 0 || r == g.height-1 || c == g.width-1 {
				g.cells[r*g.width+c] = Wall
			}
		}
	}
	return g, nil
}

// Height returns the number of rows.
func (g Grid) Height() int32 {
	return g.height
}

// Width returns the number of columns.
func (g Grid) Width() int32 {
	return g.width
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell value at p. Out-of-bounds positions read as Wall, so
// movement code needs no separate bounds check.
func (g Grid) At(p Position) CellID {
	if !g.Contains(p) {
		return Wall
	}
	return g.cells[p.Row*g.width+p.Col]
}

// Set returns a copy of the grid with the cell at p replaced. Panics on an
// out-of-bounds position: placements are computed against this grid, so a
// bad coordinate is a programming defect.
func (g Grid) Set(p Position, id CellID) Grid {
	if !g.Contains(p) {
		panic("grid: Set out of bounds")
	}
	cells := make([]CellID, len(g.cells))
	copy(cells, g.cells)
	cells[p.Row*g.width+p.Col] = id
	return Grid{height: g.height, width: g.width, cells: cells}
}

// FloorCells returns every floor cell in row-major order.
func (g Grid) FloorCells() []Position {
	var out []Position
	for r := int32(0); r < g.height; r++ {
		for c := int32(0); c < g.width; c++ {
			if g.cells[r*g.width+c] == Floor {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// CountNonFloor returns the number of cells that are not floor.
func (g Grid) CountNonFloor() int {
	n := 0
	for _, c := range g.cells {
		if c != Floor {
			n++
		}
	}
	return n
}

// RandomPositions draws n distinct floor cells without replacement. The key
// must be a fresh child key; the draw is reproducible given equal keys.
func RandomPositions(key prng.Key, g Grid, n int) ([]Position, error) {
	cells := g.FloorCells()
	if n > len(cells) {
		return nil, errors.ResourceExhaustedf(
			"cannot place %d entities on %d free cells", n, len(cells)).
			WithMeta("requested", n).
			WithMeta("available", len(cells))
	}

	// Partial Fisher-Yates driven by per-step child keys.
	for i := 0; i < n; i++ {
		j := i + key.Fold(uint64(i)).Intn(len(cells)-i)
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells[:n], nil
}

// RandomDirections draws n independent uniform headings in {0,1,2,3}.
func RandomDirections(key prng.Key, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(key.Fold(uint64(i)).Intn(4))
	}
	return out
}
