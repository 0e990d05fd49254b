package taxicab

import (
	"sort"
	"testing"
)

func TestActionFieldZeroBudgetDefaultCost(t *testing.T) {
	// Default cost is 0, so a 0 budget still floods the whole component.
	// Pin the field to the start with a 1-cost move instead.
	m := NewSquare(3, 0)
	got := m.ActionField(Pt(1, 1), 0).
		WithCost(func(Point, int) float64 { return 1 }).
		Solve()
	if len(got) != 1 {
		t.Fatalf("field = %v, want only the start", got)
	}
	if got[0].Point != Pt(1, 1) || got[0].Cost != 0 {
		t.Fatalf("start entry = %+v, want (1, 1) at cost 0", got[0])
	}
}

func TestActionFieldDefaultsFloodEverything(t *testing.T) {
	// With the zero-cost default every connected cell is reachable at 0.
	m := NewSquare(3, 0)
	got := m.ActionField(Pt(1, 1), 0).Solve()
	if len(got) != m.Count() {
		t.Fatalf("flooded %d cells, want %d", len(got), m.Count())
	}
	for _, c := range got {
		if c.Cost != 0 {
			t.Fatalf("cell %v has cost %v under the free default", c.Point, c.Cost)
		}
	}
}

func TestActionFieldUnitCostIsTaxicabDistance(t *testing.T) {
	m := NewSquare(5, 0)
	start := Pt(0, 0)
	got := m.ActionField(start, 2).
		WithCost(func(Point, int) float64 { return 1 }).
		Solve()

	want := make(map[Point]float64)
	for p := range m.Points() {
		if d := p.Taxicab(start); d <= 2 {
			want[p] = float64(d)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("field has %d cells, want %d", len(got), len(want))
	}
	for _, c := range got {
		wc, ok := want[c.Point]
		if !ok {
			t.Fatalf("unexpected cell %v in field", c.Point)
		}
		if c.Cost != wc {
			t.Fatalf("cell %v costs %v, want its taxicab distance %v", c.Point, c.Cost, wc)
		}
	}
}

func TestActionFieldRespectsBudgetInclusive(t *testing.T) {
	m := NewSquare(9, 0)
	got := m.ActionField(Pt(4, 4), 3).
		WithCost(func(Point, int) float64 { return 1 }).
		Solve()
	reached := make(map[Point]bool)
	for _, c := range got {
		if c.Cost > 3 {
			t.Fatalf("cell %v exceeds budget: %v", c.Point, c.Cost)
		}
		reached[c.Point] = true
	}
	// The boundary itself is allowed.
	if !reached[Pt(7, 4)] {
		t.Fatal("cell exactly at the budget must be included")
	}
	if reached[Pt(8, 4)] {
		t.Fatal("cell one past the budget must be pruned")
	}
}

func TestActionFieldPassabilityGate(t *testing.T) {
	// 3×1 corridor with an impassable middle: the far end is unreachable.
	m := NewRectangle(3, 1, "open")
	m.Set(1, 0, "wall")

	got := m.ActionField(Pt(0, 0), 10).
		WithPassable(func(_ Point, v string) bool { return v != "wall" }).
		WithCost(func(Point, string) float64 { return 1 }).
		Solve()

	if len(got) != 1 || got[0].Point != Pt(0, 0) {
		t.Fatalf("field = %v, want the start alone", got)
	}
	for _, c := range got {
		if c.Point == Pt(1, 0) {
			t.Fatal("impassable cell leaked into the field")
		}
	}
}

func TestActionFieldWallsFlowAround(t *testing.T) {
	//  . . .
	//  W W .
	//  S . .
	// Going straight north is blocked; the detour around the east side
	// takes six moves.
	m := NewSquare(3, '.')
	m.Set(0, 1, 'W')
	m.Set(1, 1, 'W')

	got := m.ActionField(Pt(0, 0), 10).
		WithPassable(func(_ Point, v rune) bool { return v != 'W' }).
		WithCost(func(Point, rune) float64 { return 1 }).
		Solve()

	costs := make(map[Point]float64)
	for _, c := range got {
		costs[c.Point] = c.Cost
	}
	if got, want := costs[Pt(0, 2)], 6.0; got != want {
		t.Fatalf("detour cost to (0, 2) = %v, want %v", got, want)
	}
	if _, ok := costs[Pt(0, 1)]; ok {
		t.Fatal("wall cell must not appear")
	}
}

func TestActionFieldPicksCheaperPath(t *testing.T) {
	// Two routes to (1, 1): through (1, 0) costs 1+5, through (0, 1) costs
	// 1+1. The field must report the cheaper total.
	m := NewSquare(2, 1.0)
	m.Set(1, 0, 5.0)

	got := m.ActionField(Pt(0, 0), 100).
		WithCost(func(_ Point, v float64) float64 { return v }).
		Solve()

	costs := make(map[Point]float64)
	for _, c := range got {
		costs[c.Point] = c.Cost
	}
	if costs[Pt(1, 1)] != 2 {
		t.Fatalf("cost to (1, 1) = %v, want cheapest path 2", costs[Pt(1, 1)])
	}
}

func TestActionFieldOutputSortedByCost(t *testing.T) {
	m := NewSquare(6, 0)
	got := m.ActionField(Pt(2, 3), 4).
		WithCost(func(Point, int) float64 { return 1 }).
		Solve()
	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Cost < got[j].Cost }) {
		t.Fatalf("field not sorted by cost: %v", got)
	}
	if got[0].Point != Pt(2, 3) || got[0].Cost != 0 {
		t.Fatalf("first entry %+v, want the start at cost 0", got[0])
	}
}

func TestActionFieldCrossesWrapSeam(t *testing.T) {
	// On a wrapped X axis the cell "left of" the start is one step away.
	m := NewRectangle(8, 1, 0).WithCycle(true, false)
	got := m.ActionField(Pt(0, 0), 1).
		WithCost(func(Point, int) float64 { return 1 }).
		Solve()

	costs := make(map[Point]float64)
	for _, c := range got {
		costs[c.Point] = c.Cost
	}
	if costs[Pt(-1, 0)] != 1 {
		t.Fatalf("wrapped neighbor (-1, 0) costs %v, want 1", costs[Pt(-1, 0)])
	}
	if len(costs) != 3 {
		t.Fatalf("field %v, want start plus both seam neighbors", got)
	}
}

func TestActionFieldSolverIsOneShot(t *testing.T) {
	m := NewSquare(2, 0)
	s := m.ActionField(Pt(0, 0), 1)
	s.Solve()
	defer func() {
		if recover() == nil {
			t.Fatal("second Solve must panic")
		}
	}()
	s.Solve()
}
