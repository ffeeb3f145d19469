package maze

// The weave inserter carves crossings: two independent straight passages
// through one interior cell, one drawn on top. A crossing must not merge the
// connectivity classes of the two lanes with each other, and neither lane
// may close a cycle on its own, so each lane is checked against the forest
// separately before anything is committed.

// insertWeaves runs the geometric retry loop that precedes every wall step:
// keep attempting crossings while a uniform draw stays below the weave
// fraction. Rejected attempts are silent; they simply consume one iteration.
// Grids without interior cells are skipped entirely, since a crossing needs
// in-bounds neighbors on all four sides.
func (g *generator) insertWeaves() {
	if g.width < 3 || g.height < 3 {
		return
	}
	for g.rng.Float64() < g.weave {
		g.tryWeave()
	}
}

// tryWeave makes a single crossing attempt at a random interior cell.
func (g *generator) tryWeave() {
	x := g.rng.between(1, g.width-2)
	y := g.rng.between(1, g.height-2)
	pos := y*g.width + x

	// A crossing needs the cell empty apart from at most one straight
	// passage already running through it. Combining the west neighbor's
	// east bit, the north neighbor's south bit and the cell's own code
	// counts every connection touching this cell; 3 or more means it is
	// saturated (or already a crossing) and the attempt is abandoned.
	if (g.cells[pos-1]&East | g.cells[pos-g.width]&South | g.cells[pos]) >= 3 {
		return
	}

	// Resolve the four arm endpoints. When a passage already reaches the
	// center from one side, that side's endpoint collapses onto the center
	// itself: the existing passage has already merged the arm's set with
	// the center's, so the center is the set to connect from.
	west := laneEndpoint(pos, -1, g.cells[pos-1].Has(East))
	east := laneEndpoint(pos, 1, g.cells[pos].Has(East))
	north := laneEndpoint(pos, -g.width, g.cells[pos-g.width].Has(South))
	south := laneEndpoint(pos, g.width, g.cells[pos].Has(South))

	// Either lane closing a cycle vetoes the whole attempt. Carving only
	// the surviving lane would bias the crossing statistics, so there is
	// no partial fallback. Equal endpoints mean the lane already runs
	// straight through; its union below is a no-op.
	if west != east && g.sets.find(west) == g.sets.find(east) {
		return
	}
	if north != south && g.sets.find(north) == g.sets.find(south) {
		return
	}

	g.sets.union(west, east)
	g.sets.union(north, south)

	if g.rng.Intn(2) == 0 {
		g.cells[pos] = WeaveVertical
	} else {
		g.cells[pos] = WeaveHorizontal
	}
	// Connect the west and north arms into the freshly carved center. The
	// east and south arms are reached by the center's own passage bits.
	g.cells[pos-1] |= East
	g.cells[pos-g.width] |= South
}

// laneEndpoint resolves one arm of a lane: the neighboring cell at
// center+offset, unless a passage already connects that neighbor to the
// center, in which case the endpoint is the center itself.
func laneEndpoint(center, offset int, connected bool) int {
	if connected {
		return center
	}
	return center + offset
}
