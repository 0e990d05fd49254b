// Package taxicab implements a dense 2-D tile map addressed in taxicab
// (Manhattan) space.
//
// A TaxicabMap stores one value per cell in a fixed-extent rectangle while
// callers address cells with unbounded signed coordinates. An origin offset
// translates between the two, and each axis can independently wrap around so
// the map behaves as a cylinder or torus. On top of the store the package
// provides diamond-ring neighborhood enumeration and a cost-bounded
// reachability solver (the "action field") for turn-based movement.
package taxicab

import "strconv"

// Point is an absolute map coordinate. It is a plain value; the zero Point
// is the coordinate (0, 0), not "no point".
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Taxicab returns the taxicab (Manhattan) distance to q.
func (p Point) Taxicab(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Cmp orders points lexicographically by (X, Y). It returns -1 if p sorts
// before q, +1 if after, and 0 if equal. The ordering is a stable iteration
// key, not a distance metric.
func (p Point) Cmp(q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return +1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return +1
	}
	return 0
}

func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + ", " + strconv.Itoa(p.Y) + ")"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
