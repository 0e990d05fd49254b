package taxicab

// absoluteToRelative maps an absolute coordinate onto storage indices.
// The origin is subtracted first; then each axis independently either wraps
// modulo its extent (Euclidean remainder, so negatives fold in from the far
// edge) or rejects anything outside [0, extent). The returned indices are
// always within [0, w) × [0, h) when ok.
func absoluteToRelative(x, y, originX, originY, w, h int, cycleX, cycleY bool) (i, j int, ok bool) {
	i, j = x-originX, y-originY
	if cycleX {
		i = remEuclid(i, w)
	} else if i < 0 || i >= w {
		return 0, 0, false
	}
	if cycleY {
		j = remEuclid(j, h)
	} else if j < 0 || j >= h {
		return 0, 0, false
	}
	return i, j, true
}

// relativeToAbsolute returns the canonical absolute coordinate of a storage
// index. Under wrap many absolute coordinates share an index; this is the
// representative the map reports when enumerating its own cells.
func relativeToAbsolute(i, j, originX, originY int) (x, y int) {
	return i + originX, j + originY
}

// remEuclid is the always-non-negative remainder of v mod m, for m > 0.
func remEuclid(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
