package maze_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/d0sboots/maze-project/pkg/maze"
)

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  maze.Config
		want error
	}{
		{"width too small", maze.Config{Width: 1, Height: 5, Seed: "x"}, maze.ErrDimensions},
		{"height too small", maze.Config{Width: 5, Height: 0, Seed: "x"}, maze.ErrDimensions},
		{"negative fraction", maze.Config{Width: 4, Height: 4, WeaveFraction: -0.1, Seed: "x"}, maze.ErrWeaveFraction},
		{"fraction of one", maze.Config{Width: 4, Height: 4, WeaveFraction: 1, Seed: "x"}, maze.ErrWeaveFraction},
		{"missing seed", maze.Config{Width: 4, Height: 4}, maze.ErrNoSeed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := maze.Generate(tc.cfg); !errors.Is(err, tc.want) {
				t.Errorf("Generate(%+v) error = %v, want %v", tc.cfg, err, tc.want)
			}
		})
	}
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := maze.Config{Width: 12, Height: 9, WeaveFraction: 0.3, Seed: "determinism"}
	a := mustGenerate(t, cfg)
	b := mustGenerate(t, cfg)
	if !reflect.DeepEqual(a.Cells, b.Cells) {
		t.Error("two runs with the same configuration produced different grids")
	}

	cfg.Seed = "determinism-2"
	c := mustGenerate(t, cfg)
	if reflect.DeepEqual(a.Cells, c.Cells) {
		t.Error("different seeds produced identical grids")
	}
}

func TestGenerateInvariants(t *testing.T) {
	configs := []maze.Config{
		{Width: 4, Height: 4, WeaveFraction: 0, Seed: "test"},
		{Width: 2, Height: 2, WeaveFraction: 0, Seed: "tiny"},
		{Width: 2, Height: 9, WeaveFraction: 0.5, Seed: "strip"},
		{Width: 8, Height: 8, WeaveFraction: 0.3, Seed: "mixed"},
		{Width: 16, Height: 11, WeaveFraction: 0.6, Seed: "dense"},
	}
	for _, cfg := range configs {
		t.Run(cfg.Seed, func(t *testing.T) {
			checkInvariants(t, mustGenerate(t, cfg))
		})
	}
}

// TestGenerateWeaveHeavy keeps a small interior under sustained retry
// pressure: one interior cell and a 0.9 fraction, so almost every wall step
// runs many weave attempts against mostly-saturated state. The run must
// still terminate and every invariant must hold. The timeout turns a hung
// retry loop into a loud failure instead of a stuck test binary.
func TestGenerateWeaveHeavy(t *testing.T) {
	type result struct {
		grid *maze.Grid
		err  error
	}
	done := make(chan result, 1)
	go func() {
		g, err := maze.Generate(maze.Config{Width: 3, Height: 3, WeaveFraction: 0.9, Seed: "weave-heavy"})
		done <- result{g, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("Generate: %v", r.err)
		}
		checkInvariants(t, r.grid)
	case <-time.After(30 * time.Second):
		t.Fatal("generation did not terminate under weave retry pressure")
	}
}

// TestGenerateNoWeaves pins the weave-free scenario: with the fraction at
// zero the output is exactly the spanning tree chosen by the shuffled wall
// order, and no cell carries a crossing code.
func TestGenerateNoWeaves(t *testing.T) {
	g := mustGenerate(t, maze.Config{Width: 4, Height: 4, WeaveFraction: 0, Seed: "test"})
	for pos, c := range g.Cells {
		if c > maze.South|maze.East {
			t.Errorf("cell %d = %d, want a plain passage code in {0,1,2,3}", pos, c)
		}
	}
	if n := g.WeaveCount(); n != 0 {
		t.Errorf("WeaveCount = %d, want 0", n)
	}
	if n := g.PassageCount(); n != g.Size()-1 {
		t.Errorf("PassageCount = %d, want %d (spanning tree)", n, g.Size()-1)
	}
	checkInvariants(t, g)
}

func mustGenerate(t *testing.T, cfg maze.Config) *maze.Grid {
	t.Helper()
	g, err := maze.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate(%+v): %v", cfg, err)
	}
	return g
}

// checkInvariants asserts every structural property of a finished grid:
// legal cell codes, no passages leaving the grid, crossings strictly
// interior, the passage-count identity, and the spanning-tree shape of the
// weave-aware graph.
func checkInvariants(t *testing.T, g *maze.Grid) {
	t.Helper()
	checkCellCodes(t, g)
	checkBoundary(t, g)
	checkWeaveLocality(t, g)

	if want := g.Size() - 1 + g.WeaveCount(); g.PassageCount() != want {
		t.Errorf("PassageCount = %d, want %d (cells-1 plus one extra bit pair per crossing)",
			g.PassageCount(), want)
	}
	checkSpanningTree(t, g)
}

func checkCellCodes(t *testing.T, g *maze.Grid) {
	t.Helper()
	for pos, c := range g.Cells {
		switch c {
		case 0, maze.South, maze.East, maze.South | maze.East,
			maze.WeaveVertical, maze.WeaveHorizontal:
		default:
			t.Errorf("cell %d holds illegal code %d", pos, c)
		}
	}
}

func checkBoundary(t *testing.T, g *maze.Grid) {
	t.Helper()
	for x := 0; x < g.Width; x++ {
		if g.At(x, g.Height-1).Has(maze.South) {
			t.Errorf("bottom-row cell (%d,%d) has a south passage leaving the grid", x, g.Height-1)
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.At(g.Width-1, y).Has(maze.East) {
			t.Errorf("rightmost cell (%d,%d) has an east passage leaving the grid", g.Width-1, y)
		}
	}
}

func checkWeaveLocality(t *testing.T, g *maze.Grid) {
	t.Helper()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.At(x, y).IsWeave() {
				continue
			}
			if x < 1 || x > g.Width-2 || y < 1 || y > g.Height-2 {
				t.Errorf("weave crossing at boundary cell (%d,%d)", x, y)
			}
		}
	}
}

// checkSpanningTree verifies connectivity and acyclicity of the weave-aware
// graph. Each crossing cell is split into two nodes, one per lane: the
// horizontal lane keeps the cell's flat index and the vertical lane gets a
// fresh index, so a crossing links its arms without linking the lanes to
// each other. Over that node set the carved passages must form exactly a
// spanning tree.
func checkSpanningTree(t *testing.T, g *maze.Grid) {
	t.Helper()

	nodes := g.Size()
	vertical := make(map[int]int)
	for pos, c := range g.Cells {
		if c.IsWeave() {
			vertical[pos] = nodes
			nodes++
		}
	}
	vNode := func(pos int) int {
		if id, ok := vertical[pos]; ok {
			return id
		}
		return pos
	}

	parent := make([]int, nodes)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	edges := 0
	for pos, c := range g.Cells {
		if c.Has(maze.East) {
			a, b := find(pos), find(pos+1)
			if a == b {
				t.Fatalf("east passage at %d closes a cycle", pos)
			}
			parent[a] = b
			edges++
		}
		if c.Has(maze.South) {
			a, b := find(vNode(pos)), find(vNode(pos+g.Width))
			if a == b {
				t.Fatalf("south passage at %d closes a cycle", pos)
			}
			parent[a] = b
			edges++
		}
	}

	if edges != nodes-1 {
		t.Fatalf("lane graph has %d edges over %d nodes, want %d", edges, nodes, nodes-1)
	}
	root := find(0)
	for i := 1; i < nodes; i++ {
		if find(i) != root {
			t.Fatalf("lane graph is disconnected at node %d", i)
		}
	}
}
