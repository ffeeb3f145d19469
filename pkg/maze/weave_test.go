package maze

import "testing"

func TestLaneEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		center    int
		offset    int
		connected bool
		want      int
	}{
		{"west arm open", 13, -1, false, 12},
		{"west arm collapsed", 13, -1, true, 13},
		{"east arm open", 13, 1, false, 14},
		{"north arm open", 13, -6, false, 7},
		{"south arm collapsed", 13, 6, true, 13},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := laneEndpoint(tc.center, tc.offset, tc.connected); got != tc.want {
				t.Errorf("laneEndpoint(%d, %d, %v) = %d, want %d",
					tc.center, tc.offset, tc.connected, got, tc.want)
			}
		})
	}
}

func TestWeaveSkippedWithoutInterior(t *testing.T) {
	// 2-wide grids have no strictly interior cell, so the weave pass must
	// be skipped outright instead of drawing from an empty range.
	g := &generator{
		width:  2,
		height: 5,
		weave:  0.99,
		cells:  make([]Cell, 10),
		sets:   newDisjointSet(10),
		rng:    newRand("no-interior"),
	}
	g.run()

	for pos, c := range g.cells {
		if c.IsWeave() {
			t.Fatalf("weave carved at %d in a grid with no interior", pos)
		}
	}
}

func TestWeaveRejectsSaturatedCell(t *testing.T) {
	// Pre-carve a corner junction through the single interior cell of a
	// 3x3 grid: passages entering from the west and the north. Every
	// attempt must reject it, leaving the junction untouched.
	const w, h = 3, 3
	g := &generator{
		width:  w,
		height: h,
		weave:  0.5,
		cells:  make([]Cell, w*h),
		sets:   newDisjointSet(w * h),
		rng:    newRand("saturated"),
	}
	center := 1*w + 1
	g.cells[center-1] |= East
	g.cells[center-w] |= South
	g.sets.union(center-1, center)
	g.sets.union(center-w, center)

	for i := 0; i < 200; i++ {
		g.tryWeave()
	}
	if g.cells[center].IsWeave() {
		t.Error("weave carved through a saturated cell")
	}
}
