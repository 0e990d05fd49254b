package taxicab

import (
	"container/heap"
	"sort"
)

// FieldCell is one entry of a solved action field: a reachable point and the
// cumulative action-point cost of the cheapest way to it.
type FieldCell struct {
	Cost  float64
	Point Point
}

// ActionFieldSolver computes which cells an actor standing at a start point
// can reach without spending more than a fixed action-point budget. The
// caller gates cells with a passability predicate and prices moves with a
// per-cell cost function; both are late-bound and see the cell being entered.
// The solver only reads the map; it must not be used while the map mutates.
type ActionFieldSolver[T any] struct {
	m        *TaxicabMap[T]
	start    Point
	budget   float64
	passable func(Point, T) bool
	cost     func(Point, T) float64
	consumed bool
}

// ActionField creates a solver for the reachable set around start with the
// given action-point budget. By default every cell is passable and every
// move is free; configure with WithPassable and WithCost, then call Solve.
func (m *TaxicabMap[T]) ActionField(start Point, budget float64) *ActionFieldSolver[T] {
	return &ActionFieldSolver[T]{
		m:        m,
		start:    start,
		budget:   budget,
		passable: func(Point, T) bool { return true },
		cost:     func(Point, T) float64 { return 0 },
	}
}

// WithPassable sets the predicate deciding whether a cell may be entered.
// It receives the candidate cell's point and stored value.
func (s *ActionFieldSolver[T]) WithPassable(passable func(Point, T) bool) *ActionFieldSolver[T] {
	s.passable = passable
	return s
}

// WithCost sets the price of entering a cell. It receives the entered cell's
// point and stored value. Costs must be non-negative for the expansion to be
// least-cost-first.
func (s *ActionFieldSolver[T]) WithCost(cost func(Point, T) float64) *ActionFieldSolver[T] {
	s.cost = cost
	return s
}

// neighbors returns the existing, passable neighbors of p with the price of
// entering each.
func (s *ActionFieldSolver[T]) neighbors(p Point) []FieldCell {
	out := make([]FieldCell, 0, 4)
	for _, d := range Directions() {
		q := d.Step(p)
		value, ok := s.m.Get(q.X, q.Y)
		if !ok || !s.passable(q, value) {
			continue
		}
		out = append(out, FieldCell{Cost: s.cost(q, value), Point: q})
	}
	return out
}

// Solve runs the expansion and returns every reachable cell with its cheapest
// cumulative cost, sorted ascending by cost. The start point is always
// included at cost 0. Costs never exceed the budget (the budget itself is
// allowed). The solver is one-shot; calling Solve twice panics.
func (s *ActionFieldSolver[T]) Solve() []FieldCell {
	if s.consumed {
		panic("taxicab: ActionFieldSolver used twice")
	}
	s.consumed = true

	best := map[Point]float64{s.start: 0}
	closed := make(map[Point]bool)

	open := &frontier{}
	heap.Push(open, FieldCell{Cost: 0, Point: s.start})

	var out []FieldCell
	for open.Len() > 0 {
		cur := heap.Pop(open).(FieldCell)
		if closed[cur.Point] {
			continue // stale entry, a cheaper path got there first
		}
		closed[cur.Point] = true
		out = append(out, cur)

		for _, nb := range s.neighbors(cur.Point) {
			if closed[nb.Point] {
				continue
			}
			next := cur.Cost + nb.Cost
			if next > s.budget {
				continue
			}
			if known, seen := best[nb.Point]; seen && known <= next {
				continue
			}
			best[nb.Point] = next
			heap.Push(open, FieldCell{Cost: next, Point: nb.Point})
		}
	}

	// Pop order is already cost-ascending; the stable sort only normalizes
	// tie order to the point ordering.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	return out
}

// frontier is a min-heap of field cells ordered by cost, ties broken by
// point order so expansion is deterministic.
type frontier []FieldCell

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].Cost != f[j].Cost {
		return f[i].Cost < f[j].Cost
	}
	return f[i].Point.Cmp(f[j].Point) < 0
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(FieldCell)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	cell := old[n-1]
	*f = old[:n-1]
	return cell
}
