// Package terrain provides the tile model used by the fieldview demo:
// a handful of ground kinds with movement costs, and a deterministic
// generator that fills a taxicab map with them.
package terrain

import (
	"math/rand/v2"

	taxicab "github.com/oovm/taxicab-map"
)

// Kind is the ground type of a single tile.
type Kind uint8

const (
	// Plain is open ground, the cheapest tile to enter.
	Plain Kind = iota
	// Forest slows movement down.
	Forest
	// Swamp slows movement down a lot.
	Swamp
	// Water cannot be entered.
	Water
	// Rock cannot be entered.
	Rock

	kindCount
)

// Passable reports whether an actor may enter a tile of this kind.
func (k Kind) Passable() bool {
	return k != Water && k != Rock
}

// MoveCost returns the action points spent entering a tile of this kind.
// Impassable kinds report an effectively infinite cost so a cost-only
// consumer still avoids them.
func (k Kind) MoveCost() float64 {
	switch k {
	case Plain:
		return 1
	case Forest:
		return 2
	case Swamp:
		return 3
	}
	return 1e9
}

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Forest:
		return "forest"
	case Swamp:
		return "swamp"
	case Water:
		return "water"
	}
	return "rock"
}

// Generate fills every cell of the map with a terrain kind derived
// deterministically from the seed. Most tiles come from a weighted pick;
// water is then grown into small pools so impassable regions are contiguous
// enough to force detours.
func Generate(m *taxicab.TaxicabMap[Kind], seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	for _, k := range m.PointsMut() {
		*k = pick(rng)
	}

	// A few pools: pick centers and flood their direct neighborhood.
	w, h := m.Size()
	ox, oy := m.Origin()
	pools := (w * h) / 48
	for p := 0; p < pools; p++ {
		cx, cy := ox+rng.IntN(w), oy+rng.IntN(h)
		m.Set(cx, cy, Water)
		for q := range m.PointsNearby(cx, cy) {
			if rng.IntN(3) > 0 {
				m.Set(q.X, q.Y, Water)
			}
		}
	}
}

// pick draws a weighted terrain kind: mostly plains, some forest, little
// swamp and rock.
func pick(rng *rand.Rand) Kind {
	switch r := rng.IntN(100); {
	case r < 55:
		return Plain
	case r < 75:
		return Forest
	case r < 85:
		return Swamp
	case r < 93:
		return Rock
	default:
		return Water
	}
}
