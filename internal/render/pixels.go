// Package render converts per-cell data into RGBA pixel buffers for the
// fieldview demo. It is pure byte shuffling with no ebiten dependency so it
// stays testable in headless builds.
package render

import "image/color"

// FillPalette writes one RGBA pixel per cell into buf, indexing the palette
// by cell value. Values past the end of the palette clamp to its last entry;
// an empty palette clears the buffer to transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// BlendCost tints the pixel for one cell toward white in proportion to the
// actor's remaining budget there: cheap-to-reach cells glow, cells at the
// edge of the budget barely change. frac is remaining/budget clamped to
// [0, 1].
func BlendCost(buf []byte, cell int, frac float64) {
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	// Keep at least a faint highlight so a cell reached exactly at the
	// budget is still visibly inside the field.
	w := 0.15 + 0.55*frac
	base := cell * 4
	for k := 0; k < 3; k++ {
		v := float64(buf[base+k])
		buf[base+k] = uint8(v + (255-v)*w)
	}
}

// MarkCell draws a solid marker over one cell, used for the actor's tile.
func MarkCell(buf []byte, cell int, col color.RGBA) {
	base := cell * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
