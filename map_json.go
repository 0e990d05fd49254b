package taxicab

import (
	"encoding/json"
	"fmt"
)

// mapJSON is the wire shape of a TaxicabMap. Cells are listed in storage
// order, X-major, matching Points.
type mapJSON[T any] struct {
	Width   int  `json:"width"`
	Height  int  `json:"height"`
	OriginX int  `json:"origin_x"`
	OriginY int  `json:"origin_y"`
	CycleX  bool `json:"cycle_x"`
	CycleY  bool `json:"cycle_y"`
	Cells   []T  `json:"cells"`
}

// MarshalJSON encodes the map, provided T itself is JSON-encodable.
func (m *TaxicabMap[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(mapJSON[T]{
		Width:   m.width,
		Height:  m.height,
		OriginX: m.originX,
		OriginY: m.originY,
		CycleX:  m.cycleX,
		CycleY:  m.cycleY,
		Cells:   m.cells,
	})
}

// UnmarshalJSON decodes a map previously produced by MarshalJSON.
func (m *TaxicabMap[T]) UnmarshalJSON(data []byte) error {
	var raw mapJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Width <= 0 || raw.Height <= 0 {
		return fmt.Errorf("taxicab: invalid map dimensions %d×%d", raw.Width, raw.Height)
	}
	if len(raw.Cells) != raw.Width*raw.Height {
		return fmt.Errorf("taxicab: map has %d cells, want %d", len(raw.Cells), raw.Width*raw.Height)
	}
	m.cells = raw.Cells
	m.width = raw.Width
	m.height = raw.Height
	m.originX = raw.OriginX
	m.originY = raw.OriginY
	m.cycleX = raw.CycleX
	m.cycleY = raw.CycleY
	return nil
}
