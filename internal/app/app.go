//go:build ebiten

package app

import (
	"image/color"
	"time"

	taxicab "github.com/oovm/taxicab-map"
	"github.com/oovm/taxicab-map/internal/render"
	"github.com/oovm/taxicab-map/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var palette = []color.RGBA{
	terrain.Plain:  {R: 118, G: 154, B: 86, A: 255},
	terrain.Forest: {R: 54, G: 99, B: 56, A: 255},
	terrain.Swamp:  {R: 96, G: 86, B: 54, A: 255},
	terrain.Water:  {R: 48, G: 86, B: 134, A: 255},
	terrain.Rock:   {R: 112, G: 108, B: 104, A: 255},
}

var startColor = color.RGBA{R: 232, G: 72, B: 48, A: 255}

// Game renders a terrain map and the action field of an actor standing on
// it. Clicking a tile moves the actor; the reachable cells light up shaded
// by how much budget is left on arrival.
type Game struct {
	world  *taxicab.TaxicabMap[terrain.Kind]
	start  taxicab.Point
	budget float64
	field  []taxicab.FieldCell
	dirty  bool

	seed  int64
	scale int

	img   *ebiten.Image
	buf   []byte
	kinds []uint8
}

// New constructs the demo game from its configuration.
func New(cfg *Config) *Game {
	world := taxicab.NewRectangle(cfg.Width, cfg.Height, terrain.Plain)
	terrain.Generate(world, cfg.Seed)
	g := &Game{
		world:  world,
		start:  taxicab.Pt(cfg.Width/2, cfg.Height/2),
		budget: cfg.Budget,
		dirty:  true,
		seed:   cfg.Seed,
		scale:  cfg.Scale,
		img:    ebiten.NewImage(cfg.Width, cfg.Height),
		buf:    make([]byte, cfg.Width*cfg.Height*4),
		kinds:  make([]uint8, cfg.Width*cfg.Height),
	}
	return g
}

// Reset regenerates terrain with the given seed and recenters the actor.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	terrain.Generate(g.world, seed)
	w, h := g.world.Size()
	ox, oy := g.world.Origin()
	g.start = taxicab.Pt(ox+w/2, oy+h/2)
	g.dirty = true
}

// Update handles input and recomputes the action field when needed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		cx, cy := g.world.Cycle()
		g.world.SetCycle(!cx, cy)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		cx, cy := g.world.Cycle()
		g.world.SetCycle(cx, !cy)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.shiftOrigin(-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.shiftOrigin(1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.shiftOrigin(0, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.shiftOrigin(0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.budget++
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.budget > 0 {
		g.budget--
		g.dirty = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if p, ok := g.tileAtCursor(); ok {
			if k, _ := g.world.Get(p.X, p.Y); k.Passable() {
				g.start = p
				g.dirty = true
			}
		}
	}

	if g.dirty {
		g.solve()
	}
	return nil
}

// shiftOrigin moves the map's coordinate window and keeps the actor on it.
func (g *Game) shiftOrigin(dx, dy int) {
	g.world.ShiftOrigin(dx, dy)
	if !g.world.Has(g.start.X, g.start.Y) {
		w, h := g.world.Size()
		ox, oy := g.world.Origin()
		g.start = taxicab.Pt(ox+w/2, oy+h/2)
	}
	g.dirty = true
}

// tileAtCursor maps the mouse position to the absolute coordinate of the
// tile under it. Screen rows grow downward while map Y grows north, so the
// row index flips.
func (g *Game) tileAtCursor() (taxicab.Point, bool) {
	mx, my := ebiten.CursorPosition()
	w, h := g.world.Size()
	i, r := mx/g.scale, my/g.scale
	if i < 0 || i >= w || r < 0 || r >= h {
		return taxicab.Point{}, false
	}
	ox, oy := g.world.Origin()
	return taxicab.Pt(ox+i, oy+(h-1-r)), true
}

// solve recomputes the action field from the actor's tile.
func (g *Game) solve() {
	g.field = g.world.ActionField(g.start, g.budget).
		WithPassable(func(_ taxicab.Point, k terrain.Kind) bool { return k.Passable() }).
		WithCost(func(_ taxicab.Point, k terrain.Kind) float64 { return k.MoveCost() }).
		Solve()
	g.dirty = false
}

// Draw renders terrain, the action field shading and the actor marker.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.world.Size()

	c := 0
	for _, k := range g.world.Points() {
		i, j := c/h, c%h
		g.kinds[(h-1-j)*w+i] = uint8(k)
		c++
	}
	render.FillPalette(g.buf, g.kinds, palette)

	for _, cell := range g.field {
		i, j, ok := g.world.Locate(cell.Point.X, cell.Point.Y)
		if !ok {
			continue
		}
		frac := 1.0
		if g.budget > 0 {
			frac = (g.budget - cell.Cost) / g.budget
		}
		render.BlendCost(g.buf, (h-1-j)*w+i, frac)
	}

	if i, j, ok := g.world.Locate(g.start.X, g.start.Y); ok {
		render.MarkCell(g.buf, (h-1-j)*w+i, startColor)
	}

	g.img.WritePixels(g.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.world.Size()
	return w * g.scale, h * g.scale
}
