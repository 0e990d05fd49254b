// Package app adapts a taxicab map with generated terrain to the ebiten
// game loop for the fieldview demo.
package app

import "flag"

// Config represents the command-line parameters for the demo.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Budget float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 48, Height: 32, Scale: 16, TPS: 60, Seed: 42, Budget: 8}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "map width in tiles")
	fs.IntVar(&c.Height, "height", c.Height, "map height in tiles")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "terrain generation seed")
	fs.Float64Var(&c.Budget, "budget", c.Budget, "movement budget in action points")
}
