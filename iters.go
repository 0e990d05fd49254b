package taxicab

import "iter"

// DiamondRing enumerates the taxicab ring of the given radius around center:
// every point whose taxicab distance from center is exactly radius. Radius 0
// yields only the center. Radius n > 0 yields 4n points in rotational order,
// four edges of n steps each starting at (x+n, y):
//
//	(x+n, y) → (x, y+n) → (x-n, y) → (x, y-n) → back toward (x+n, y)
//
// The sequence is pure geometry; it knows nothing about any map.
func DiamondRing(center Point, radius int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if radius <= 0 {
			if radius == 0 {
				yield(center)
			}
			return
		}
		x, y, n := center.X, center.Y, radius
		for k := 0; k < n; k++ {
			if !yield(Point{X: x + n - k, Y: y + k}) {
				return
			}
		}
		for k := 0; k < n; k++ {
			if !yield(Point{X: x - k, Y: y + n - k}) {
				return
			}
		}
		for k := 0; k < n; k++ {
			if !yield(Point{X: x - n + k, Y: y - k}) {
				return
			}
		}
		for k := 0; k < n; k++ {
			if !yield(Point{X: x + k, Y: y - n + k}) {
				return
			}
		}
	}
}

// PointsAround enumerates the cells of the taxicab ring of the given radius
// around (x, y) that exist on this map, in ring order. Candidates the
// transform rejects (outside a non-wrapping axis) are skipped; the order of
// the survivors is unchanged.
func (m *TaxicabMap[T]) PointsAround(x, y, steps int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for p := range DiamondRing(Point{X: x, Y: y}, steps) {
			if !m.Has(p.X, p.Y) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// PointsNearby enumerates the existing direct neighbors of (x, y): at most
// four cells, one per direction.
func (m *TaxicabMap[T]) PointsNearby(x, y int) iter.Seq[Point] {
	return m.PointsAround(x, y, 1)
}

// Points enumerates every cell as (canonical absolute point, value), X-major
// over the storage index space. Each call starts a fresh pass.
func (m *TaxicabMap[T]) Points() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i := 0; i < m.width; i++ {
			for j := 0; j < m.height; j++ {
				x, y := relativeToAbsolute(i, j, m.originX, m.originY)
				if !yield(Point{X: x, Y: y}, m.cells[i*m.height+j]) {
					return
				}
			}
		}
	}
}

// PointsMut enumerates every cell as (canonical absolute point, pointer to
// value) so the caller can edit in place. Each cell is visited exactly once,
// so no two yielded pointers alias. The pointers stay valid until the next
// Extend.
func (m *TaxicabMap[T]) PointsMut() iter.Seq2[Point, *T] {
	return func(yield func(Point, *T) bool) {
		for i := 0; i < m.width; i++ {
			for j := 0; j < m.height; j++ {
				x, y := relativeToAbsolute(i, j, m.originX, m.originY)
				if !yield(Point{X: x, Y: y}, &m.cells[i*m.height+j]) {
					return
				}
			}
		}
	}
}
