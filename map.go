package taxicab

// TaxicabMap is a dense rectangular tile map. Every cell always holds a
// value; there are no holes. Callers address cells with absolute coordinates,
// which the map translates through its origin offset and per-axis wrap flags
// before touching storage. Origin and wrap are metadata only: changing them
// re-addresses every cell instantly without moving any data.
type TaxicabMap[T any] struct {
	cells  []T // column-major: index i*height+j for storage index (i, j)
	width  int
	height int

	cycleX  bool
	cycleY  bool
	originX int
	originY int
}

// NewRectangle allocates a width×height map with every cell set to fill.
// The origin starts at (0, 0) and wrap is off on both axes. Panics when
// either dimension is not positive: wrap arithmetic needs a real extent.
func NewRectangle[T any](width, height int, fill T) *TaxicabMap[T] {
	if width <= 0 || height <= 0 {
		panic("taxicab: map dimensions must be positive")
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &TaxicabMap[T]{cells: cells, width: width, height: height}
}

// NewSquare allocates an n×n map with every cell set to fill.
func NewSquare[T any](n int, fill T) *TaxicabMap[T] {
	return NewRectangle(n, n, fill)
}

// WithCycle sets the wrap flags and returns the map, for chained construction.
func (m *TaxicabMap[T]) WithCycle(cycleX, cycleY bool) *TaxicabMap[T] {
	m.SetCycle(cycleX, cycleY)
	return m
}

// WithOrigin sets the origin and returns the map, for chained construction.
func (m *TaxicabMap[T]) WithOrigin(x, y int) *TaxicabMap[T] {
	m.SetOrigin(x, y)
	return m
}

// Size returns the storage extents.
func (m *TaxicabMap[T]) Size() (width, height int) {
	return m.width, m.height
}

// Count returns the total number of cells, width×height.
func (m *TaxicabMap[T]) Count() int {
	return len(m.cells)
}

// Cycle returns the per-axis wrap flags.
func (m *TaxicabMap[T]) Cycle() (cycleX, cycleY bool) {
	return m.cycleX, m.cycleY
}

// SetCycle turns wrap-around addressing on or off per axis. Takes effect on
// the next lookup.
func (m *TaxicabMap[T]) SetCycle(cycleX, cycleY bool) {
	m.cycleX = cycleX
	m.cycleY = cycleY
}

// Origin returns the translation between absolute coordinates and storage.
func (m *TaxicabMap[T]) Origin() (x, y int) {
	return m.originX, m.originY
}

// SetOrigin moves the origin. Takes effect on the next lookup.
func (m *TaxicabMap[T]) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// ShiftOrigin moves the origin by a delta.
func (m *TaxicabMap[T]) ShiftOrigin(dx, dy int) {
	m.originX += dx
	m.originY += dy
}

// index resolves an absolute coordinate to a flat storage offset.
func (m *TaxicabMap[T]) index(x, y int) (int, bool) {
	i, j, ok := absoluteToRelative(x, y, m.originX, m.originY, m.width, m.height, m.cycleX, m.cycleY)
	if !ok {
		return 0, false
	}
	return i*m.height + j, true
}

// Locate resolves an absolute coordinate to its storage index pair, applying
// the same origin translation and wrap folding as every lookup. Renderers use
// it to place absolute points into their own row/column buffers.
func (m *TaxicabMap[T]) Locate(x, y int) (i, j int, ok bool) {
	return absoluteToRelative(x, y, m.originX, m.originY, m.width, m.height, m.cycleX, m.cycleY)
}

// Has reports whether the absolute coordinate resolves to a cell.
func (m *TaxicabMap[T]) Has(x, y int) bool {
	_, ok := m.index(x, y)
	return ok
}

// Get returns the value at the absolute coordinate, if any.
func (m *TaxicabMap[T]) Get(x, y int) (T, bool) {
	if idx, ok := m.index(x, y); ok {
		return m.cells[idx], true
	}
	var zero T
	return zero, false
}

// At returns a pointer to the cell at the absolute coordinate, or nil when
// the coordinate has no cell. The pointer stays valid until the next Extend.
func (m *TaxicabMap[T]) At(x, y int) *T {
	if idx, ok := m.index(x, y); ok {
		return &m.cells[idx]
	}
	return nil
}

// Set stores a value at the absolute coordinate. It reports false, leaving
// the map untouched, when the coordinate has no cell.
func (m *TaxicabMap[T]) Set(x, y int, value T) bool {
	idx, ok := m.index(x, y)
	if !ok {
		return false
	}
	m.cells[idx] = value
	return true
}

// Extend grows the map by size cells along the axis of d, inserting the new
// cells at the edge d points to; existing values move into the enlarged
// storage and the new cells are set to fill. The origin is NOT adjusted, so
// growing at the low edge (West or South) re-addresses existing cells: call
// ShiftOrigin afterwards if absolute coordinates should keep their meaning.
func (m *TaxicabMap[T]) Extend(d Direction, size int, fill T) {
	if size <= 0 {
		return
	}
	w, h := m.width, m.height
	nw, nh := w, h
	if d.Horizontal() {
		nw += size
	} else {
		nh += size
	}

	next := make([]T, nw*nh)
	for i := range next {
		next[i] = fill
	}

	// Offset of the old block inside the new one: only growth at the low
	// edge displaces existing cells.
	di, dj := 0, 0
	switch d {
	case West:
		di = size
	case South:
		dj = size
	}
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			next[(i+di)*nh+(j+dj)] = m.cells[i*h+j]
		}
	}

	m.cells = next
	m.width = nw
	m.height = nh
}
