// Package text renders a maze as Unicode box-drawing characters.
//
// Every cell becomes two rows of three glyphs; the glyph pair is selected
// by the cell's connectivity code combined with the relevant bits of its
// west and north neighbors. The top-left cell is drawn with an entrance
// opening and the bottom-right cell with an exit opening. Weave crossings
// use two dedicated glyph pairs regardless of their neighbors.
//
// Rendering is a pure function: the same grid and options always produce
// the same string.
package text

import (
	"fmt"
	"strings"

	"github.com/d0sboots/maze-project/pkg/maze"
)

// Space selects the character used for open passage interiors. A plain
// space is easiest to copy around; NBSP and the middle dot survive
// whitespace-mangling contexts like chat clients.
type Space int

const (
	// SpacePlain uses a regular space (U+0020).
	SpacePlain Space = iota
	// SpaceNBSP uses a no-break space (U+00A0).
	SpaceNBSP
	// SpaceDot uses a middle dot (U+00B7).
	SpaceDot
)

// ParseSpace converts a flag value ("plain", "nbsp" or "dot") to a Space.
// The empty string and "space" are accepted as aliases for plain.
func ParseSpace(s string) (Space, error) {
	switch s {
	case "", "plain", "space":
		return SpacePlain, nil
	case "nbsp":
		return SpaceNBSP, nil
	case "dot":
		return SpaceDot, nil
	default:
		return 0, fmt.Errorf("invalid space style: %s (must be 'plain', 'nbsp', or 'dot')", s)
	}
}

func (s Space) rune() rune {
	switch s {
	case SpaceNBSP:
		return ' '
	case SpaceDot:
		return '·'
	default:
		return ' '
	}
}

// Options configures text rendering.
type Options struct {
	// Space is the passage interior character. The zero value is a plain
	// space.
	Space Space
}

// glyphRows holds the 18 glyph pairs as 36 raw rows. Pair i is rows 2i and
// 2i+1. Pairs 0-15 are indexed by (left|up)<<2 | cell for plain cells;
// pairs 16 and 17 are the weave crossings (vertical and horizontal lane on
// top).
const glyphRows = `┌─┐
└─┘
┌─┐
│ │
┌──
└──
┌──
│ ┌
│ │
└─┘
│ │
│ │
│ └
└──
│ └
│ ┌
──┐
──┘
──┐
┐ │
───
───
───
┐ ┌
┘ │
──┘
┘ │
┐ │
┘ └
───
┘ └
┐ ┌
┤ ├
┤ ├
┴─┴
┬─┬`

// Render draws the maze as a string of 2*Height lines. Each line is
// 3*Width runes wide and ends with a newline.
func Render(g *maze.Grid, opts Options) string {
	rows := strings.Split(glyphRows, "\n")
	if r := opts.Space.rune(); r != ' ' {
		for i, row := range rows {
			rows[i] = strings.ReplaceAll(row, " ", string(r))
		}
	}

	last := g.Size() - 1
	var b strings.Builder
	b.Grow(g.Height * 2 * (g.Width*3*3 + 1)) // box glyphs are 3 bytes in UTF-8

	for y := 0; y < g.Height; y++ {
		for row := 0; row < 2; row++ {
			for x := 0; x < g.Width; x++ {
				pos := g.Index(x, y)
				b.WriteString(rows[glyphIndex(g, pos, last)*2+row])
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// glyphIndex selects the glyph pair for one cell. Plain cells combine the
// west neighbor's east bit and the north neighbor's south bit (shifted
// above the cell's own code) into a 4-bit index. The entrance borrows the
// "open above" bit and the exit the "open below" bit. Weave codes override
// everything: a crossing looks the same no matter its neighbors.
func glyphIndex(g *maze.Grid, pos, last int) int {
	c := g.Cells[pos]

	var left, up maze.Cell
	if pos%g.Width != 0 {
		left = g.Cells[pos-1] & maze.East
	}
	if pos >= g.Width {
		up = g.Cells[pos-g.Width] & maze.South
	}

	idx := int(left|up)<<2 | int(c)
	if pos == 0 {
		idx |= 4
	} else if pos == last {
		idx |= 1
	}
	if c.IsWeave() {
		idx = 15 + int(c)/4
	}
	return idx
}
