package taxicab

// Joint is a directed edge between two adjacent cells: an origin point plus
// the direction leaving it. It carries no storage; both endpoints are derived.
type Joint struct {
	Point     Point
	Direction Direction
}

// NewJoint builds the edge leaving p in direction d.
func NewJoint(p Point, d Direction) Joint {
	return Joint{Point: p, Direction: d}
}

// Source returns the cell the edge leaves.
func (j Joint) Source() Point {
	return j.Point
}

// Target returns the cell the edge enters.
func (j Joint) Target() Point {
	return j.Direction.Step(j.Point)
}
