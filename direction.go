package taxicab

import (
	"strconv"
	"strings"
)

// Direction is one of the four cardinal moves on the map: a unit step along
// one axis in one sign.
type Direction int

const (
	// East increases X.
	East Direction = iota
	// West decreases X.
	West
	// North increases Y.
	North
	// South decreases Y.
	South
)

// Directions returns all four directions in a fixed order.
func Directions() [4]Direction {
	return [4]Direction{East, West, North, South}
}

// Step returns the point one cell away from p in direction d.
func (d Direction) Step(p Point) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Delta returns the per-axis offset encoded by the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case West:
		return -1, 0
	case North:
		return 0, 1
	case South:
		return 0, -1
	}
	return 0, 0
}

// Horizontal reports whether the direction moves along the X axis.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// Positive reports whether the direction increases its axis coordinate.
func (d Direction) Positive() bool {
	return d == East || d == North
}

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case East:
		return West
	case West:
		return East
	case North:
		return South
	}
	return North
}

// String renders the direction as an arrow rune.
func (d Direction) String() string {
	switch d {
	case East:
		return "→"
	case West:
		return "←"
	case North:
		return "↑"
	}
	return "↓"
}

// ParseDirectionError reports a direction name that matched nothing. Input
// holds the lower-cased form of the rejected string.
type ParseDirectionError struct {
	Input string
}

func (e *ParseDirectionError) Error() string {
	return "taxicab: unknown direction " + strconv.Quote(e.Input)
}

// ParseDirection converts a human name or arrow rune into a Direction.
// Matching is case-insensitive: "east", "right" and "→" mean East; "west",
// "left" and "←" mean West; "north", "up" and "↑" mean North; "south",
// "down" and "↓" mean South. Anything else yields a *ParseDirectionError.
func ParseDirection(s string) (Direction, error) {
	normed := strings.ToLower(s)
	switch normed {
	case "east", "right", "→":
		return East, nil
	case "west", "left", "←":
		return West, nil
	case "north", "up", "↑":
		return North, nil
	case "south", "down", "↓":
		return South, nil
	}
	return East, &ParseDirectionError{Input: normed}
}
