package taxicab

import (
	"sort"
	"testing"
)

func TestPointCmpIsLexicographic(t *testing.T) {
	pts := []Point{Pt(1, 2), Pt(-3, 9), Pt(1, -5), Pt(0, 0), Pt(-3, -9)}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Cmp(pts[j]) < 0 })

	want := []Point{Pt(-3, -9), Pt(-3, 9), Pt(0, 0), Pt(1, -5), Pt(1, 2)}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("sorted order %v, want %v", pts, want)
		}
	}
	if Pt(2, 3).Cmp(Pt(2, 3)) != 0 {
		t.Fatal("equal points must compare 0")
	}
}

func TestPointTaxicab(t *testing.T) {
	cases := []struct {
		a, b Point
		want int
	}{
		{Pt(0, 0), Pt(0, 0), 0},
		{Pt(0, 0), Pt(3, 4), 7},
		{Pt(-2, 5), Pt(1, -1), 9},
	}
	for _, c := range cases {
		if got := c.a.Taxicab(c.b); got != c.want {
			t.Fatalf("Taxicab(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
		if c.a.Taxicab(c.b) != c.b.Taxicab(c.a) {
			t.Fatalf("Taxicab(%v, %v) is not symmetric", c.a, c.b)
		}
	}
}

func TestPointAddAndString(t *testing.T) {
	if got := Pt(2, -3).Add(-5, 4); got != Pt(-3, 1) {
		t.Fatalf("Add = %v", got)
	}
	if s := Pt(-3, 1).String(); s != "(-3, 1)" {
		t.Fatalf("String = %q", s)
	}
}
