package maze

import (
	"errors"
	"math/bits"
)

var (
	// ErrDimensions is returned by [Generate] when the width or height is
	// below 2. A single row or column has no internal walls to carve.
	ErrDimensions = errors.New("width and height must be at least 2")

	// ErrWeaveFraction is returned by [Generate] when the weave fraction is
	// outside [0, 1). Values at or above 1 would keep the weave retry loop
	// running forever, so they are rejected before generation starts.
	ErrWeaveFraction = errors.New("weave fraction must be in [0, 1)")

	// ErrNoSeed is returned by [Generate] when the seed is empty. Callers
	// that want an unpredictable maze must generate a seed themselves (the
	// CLI draws one from OS entropy and echoes it) so that every run stays
	// reproducible.
	ErrNoSeed = errors.New("seed must not be empty")
)

// Cell is the 4-bit connectivity code of a single grid cell.
type Cell uint8

const (
	// South marks a carved passage to the cell below (pos+width).
	South Cell = 1 << iota
	// East marks a carved passage to the cell to the right (pos+1).
	East
	// VerticalOnTop marks a weave crossing with the north-south lane drawn
	// on top. Implies South and East.
	VerticalOnTop
	// HorizontalOnTop marks a weave crossing with the east-west lane drawn
	// on top. Implies South and East.
	HorizontalOnTop
)

// The only valid crossing codes. Any other combination of the weave bits
// violates the encoding.
const (
	WeaveVertical   = South | East | VerticalOnTop   // 7
	WeaveHorizontal = South | East | HorizontalOnTop // 11
)

// Has reports whether every bit of mask is set.
func (c Cell) Has(mask Cell) bool { return c&mask == mask }

// IsWeave reports whether the cell is a weave crossing.
func (c Cell) IsWeave() bool { return c&(VerticalOnTop|HorizontalOnTop) != 0 }

// Config holds the parameters of one generation run.
type Config struct {
	// Width and Height of the grid in cells. Both must be at least 2.
	Width  int
	Height int

	// WeaveFraction is the per-attempt probability of inserting a weave
	// crossing before each wall step. The weave pass retries while a
	// uniform draw stays below this value, so the expected number of
	// attempts per wall is f/(1-f). Must be in [0, 1).
	WeaveFraction float64

	// Seed determines the shuffle order and every random draw. Required;
	// the core never invents entropy on its own.
	Seed string
}

// Validate checks the configuration without generating anything.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return ErrDimensions
	}
	if c.WeaveFraction < 0 || c.WeaveFraction >= 1 {
		return ErrWeaveFraction
	}
	if c.Seed == "" {
		return ErrNoSeed
	}
	return nil
}

// Grid is the generated maze: a flat row-major array of cell codes with the
// origin at the top-left. Renderers consume it read-only.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// Index returns the flat index of the cell at (x, y).
func (g *Grid) Index(x, y int) int { return y*g.Width + x }

// At returns the cell code at (x, y).
func (g *Grid) At(x, y int) Cell { return g.Cells[y*g.Width+x] }

// Size returns the number of cells.
func (g *Grid) Size() int { return g.Width * g.Height }

// WeaveCount returns the number of weave crossings in the grid.
func (g *Grid) WeaveCount() int {
	n := 0
	for _, c := range g.Cells {
		if c.IsWeave() {
			n++
		}
	}
	return n
}

// PassageCount returns the total number of carved south and east passage
// bits. For a finished maze this is always Width*Height - 1 + WeaveCount():
// a spanning tree's worth of passages, plus the extra passage each crossing
// threads through its shared cell.
func (g *Grid) PassageCount() int {
	n := 0
	for _, c := range g.Cells {
		n += bits.OnesCount8(uint8(c & (South | East)))
	}
	return n
}

// Generate builds a weave maze from the configuration. The returned grid is
// connected and, treating each crossing as two independent straight-through
// lanes, acyclic. Generation is single-threaded and owns all of its state;
// concurrent calls are independent.
func Generate(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &generator{
		width:  cfg.Width,
		height: cfg.Height,
		weave:  cfg.WeaveFraction,
		cells:  make([]Cell, cfg.Width*cfg.Height),
		sets:   newDisjointSet(cfg.Width * cfg.Height),
		rng:    newRand(cfg.Seed),
	}
	g.run()

	return &Grid{Width: cfg.Width, Height: cfg.Height, Cells: g.cells}, nil
}

// generator holds the working state of one run. Everything here is private
// to the run and discarded when it finishes; only the cells survive.
type generator struct {
	width, height int
	weave         float64
	cells         []Cell
	sets          *disjointSet
	rng           *rng
}

// run executes the Kruskal loop: visit every shuffled wall candidate once,
// weaving first, then carving the wall unless it would close a cycle.
func (g *generator) run() {
	walls := wallList(g.width, g.height)
	g.rng.shuffle(walls)

	for _, wall := range walls {
		g.insertWeaves()

		pos, dir := wallPos(wall), wallDir(wall)
		if g.cells[pos]&dir != 0 {
			// Already carved by a weave insertion.
			continue
		}
		step := g.width
		if dir == East {
			step = 1
		}
		a, b := g.sets.find(pos), g.sets.find(pos+step)
		if a == b {
			continue
		}
		g.cells[pos] |= dir
		g.sets.union(a, b)
	}
}
