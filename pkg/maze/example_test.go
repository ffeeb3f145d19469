package maze_test

import (
	"fmt"

	"github.com/d0sboots/maze-project/pkg/maze"
)

func ExampleGenerate() {
	grid, err := maze.Generate(maze.Config{
		Width:         6,
		Height:        4,
		WeaveFraction: 0.25,
		Seed:          "example",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cells:", grid.Size())
	// A finished maze always carries a spanning tree of passages, plus one
	// extra bit pair per crossing.
	fmt.Println("tree-shaped:", grid.PassageCount() == grid.Size()-1+grid.WeaveCount())
	// Output:
	// cells: 24
	// tree-shaped: true
}

func ExampleConfig_Validate() {
	cfg := maze.Config{Width: 10, Height: 10, WeaveFraction: 1.0, Seed: "s"}
	fmt.Println(cfg.Validate())
	// Output:
	// weave fraction must be in [0, 1)
}
