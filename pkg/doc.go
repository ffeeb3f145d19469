// Package pkg provides the core libraries for mazegen.
//
// # Overview
//
// Mazegen generates weave mazes: randomized spanning-tree mazes whose
// corridors can cross over and under each other. The pkg directory is
// organized into four areas:
//
//  1. [maze] - Generation (randomized spanning tree with weave crossings)
//  2. [render] - Output formats (Unicode text, PNG, Graphviz DOT/SVG)
//  3. [cache] - Artifact caching (file, Redis, null backends)
//  4. [store] - Maze persistence (memory, MongoDB backends)
//
// # Architecture
//
// The typical data flow through mazegen:
//
//	Config (width, height, weave fraction, seed)
//	         ↓
//	    [maze] package (carve spanning tree + crossings)
//	         ↓
//	    [render/text], [render/raster], [render/graphdot]
//	         ↓
//	    text/PNG/SVG/DOT output, cached by [cache]
//
// # Quick Start
//
// Generate a maze and render it as text:
//
//	import (
//	    "github.com/d0sboots/maze-project/pkg/maze"
//	    "github.com/d0sboots/maze-project/pkg/render/text"
//	)
//
//	g, err := maze.Generate(maze.Config{
//	    Width:         40,
//	    Height:        30,
//	    WeaveFraction: 0.1,
//	    Seed:          "my-seed",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(text.Render(g, text.Options{}))
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...       # All tests
//	go test ./pkg/maze/...  # Specific package
//	go test -run Example    # Examples only
//
// [maze]: https://pkg.go.dev/github.com/d0sboots/maze-project/pkg/maze
// [render]: https://pkg.go.dev/github.com/d0sboots/maze-project/pkg/render
// [render/text]: https://pkg.go.dev/github.com/d0sboots/maze-project/pkg/render/text
// [render/raster]: https://pkg.go.dev/github.com/d0sboots/maze-project/pkg/render/raster
// [render/graphdot]: https://pkg.go.dev/github.com/d0sboots/maze-project/pkg/render/graphdot
// [cache]: https://pkg.go.dev/github.com/d0sboots/maze-project/pkg/cache
// [store]: https://pkg.go.dev/github.com/d0sboots/maze-project/pkg/store
package pkg
