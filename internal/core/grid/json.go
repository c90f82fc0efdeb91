package grid

import "encoding/json"

type gridJSON struct {
	Height int32    `json:"height"`
	Width  int32    `json:"width"`
	Cells  []CellID `json:"cells"`
}

// MarshalJSON encodes the grid shape and cells.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{Height: g.height, Width: g.width, Cells: g.cells})
}

// UnmarshalJSON decodes a grid serialized by MarshalJSON.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var aux gridJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	g.height = aux.Height
	g.width = aux.Width
	g.cells = aux.Cells
	return nil
}
