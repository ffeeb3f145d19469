package maze

// Wall candidates are encoded as pos*2 for the wall south of a cell and
// pos*2+1 for the wall east of it. The encoding keeps the candidate list a
// flat []int that can be shuffled in place.

func wallPos(wall int) int { return wall / 2 }

func wallDir(wall int) Cell {
	if wall&1 == 0 {
		return South
	}
	return East
}

// wallList enumerates every internal wall of a width x height grid exactly
// once: a south wall for every cell except the bottom row, an east wall for
// every cell except the rightmost column. Walls on the outer boundary are
// never candidates, which is what keeps passages from leaving the grid.
func wallList(width, height int) []int {
	walls := make([]int, 0, width*(height-1)+height*(width-1))
	for pos := 0; pos < width*(height-1); pos++ {
		walls = append(walls, pos*2)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width-1; x++ {
			walls = append(walls, (y*width+x)*2+1)
		}
	}
	return walls
}
