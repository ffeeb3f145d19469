// Package maze generates weave mazes: grid mazes in which some passages
// cross over and under each other in straight lines.
//
// A maze is built as a randomized spanning tree using Kruskal's algorithm.
// Every internal wall of the grid is a candidate edge; the candidates are
// shuffled with a seeded generator and carved one by one unless carving
// would close a cycle, tracked with a disjoint-set forest. Before each wall
// step a probabilistic weave pass tries to insert crossings: two independent
// straight passages through one interior cell, one drawn on top of the
// other. The crossing lanes are unioned separately, so a crossing never
// connects the two paths that pass through it.
//
// # Output encoding
//
// The result is a flat row-major array of 4-bit cells ([Cell]). Bit 0 is a
// passage to the south neighbor, bit 1 a passage to the east neighbor, and
// bits 2 and 3 mark a weave crossing with the vertical or horizontal lane
// drawn on top. The weave bits are mutually exclusive and imply the two
// passage bits, so the only valid crossing codes are 7 and 11. Boundary
// cells never carry passages that would leave the grid.
//
// # Determinism
//
// Generation is a pure function of the configuration. The same width,
// height, weave fraction and seed always produce the identical grid. Seeds
// are arbitrary strings; they are hashed into the PRNG state, so there is no
// cross-implementation seed compatibility with other maze tools.
//
// # Example
//
//	grid, err := maze.Generate(maze.Config{
//	    Width:         12,
//	    Height:        12,
//	    WeaveFraction: 0.3,
//	    Seed:          "my-seed",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text.Render(grid, text.Options{}))
package maze
