// Package raster renders a maze as a PNG image.
//
// Every cell becomes a fixed-size square tile. Inside a tile, a passage of
// PassageWidth pixels runs between walls of WallWidth pixels; the geometry
// must satisfy 2*WallWidth + PassageWidth <= CellWidth. A phantom row and
// column above and left of the grid close the outer border, the entrance is
// carved through the top edge of the top-left cell and the exit through the
// bottom edge of the bottom-right cell. Weave crossings draw two short
// wall-colored stubs across the lane that passes underneath.
//
// Drawing goes through fogleman/gg; output pixels are a pure function of
// the grid and options.
package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/d0sboots/maze-project/pkg/maze"
)

// ErrGeometry is returned by [Render] when two walls plus a passage do not
// fit inside a cell, or a width is not positive.
var ErrGeometry = errors.New("invalid tile geometry: need 2*wall + passage <= cell")

// Default tile geometry, matching a 20px cell with 2px walls.
const (
	DefaultCellWidth    = 20
	DefaultWallWidth    = 2
	DefaultPassageWidth = 11
)

// Options configures raster rendering. Zero-value fields fall back to the
// defaults above and to [DefaultPalette].
type Options struct {
	CellWidth    int
	WallWidth    int
	PassageWidth int
	Palette      Palette
}

func (o Options) normalized() (Options, error) {
	if o.CellWidth == 0 {
		o.CellWidth = DefaultCellWidth
	}
	if o.WallWidth == 0 {
		o.WallWidth = DefaultWallWidth
	}
	if o.PassageWidth == 0 {
		o.PassageWidth = DefaultPassageWidth
	}
	if o.Palette == (Palette{}) {
		o.Palette = DefaultPalette()
	}
	if o.CellWidth < 1 || o.WallWidth < 1 || o.PassageWidth < 1 ||
		2*o.WallWidth+o.PassageWidth > o.CellWidth {
		return o, ErrGeometry
	}
	return o, nil
}

// tile holds the pixel offsets of one cell's bands: wall starts at
// wallStart, the passage runs [mainStart, mainEnd), and the far wall ends
// at wallEnd. Everything outside [wallStart, wallEnd) is background.
type tile struct {
	cell      int
	wallStart int
	mainStart int
	mainEnd   int
	wallEnd   int
}

func newTile(o Options) tile {
	ws := (o.CellWidth - 2*o.WallWidth - o.PassageWidth) / 2
	return tile{
		cell:      o.CellWidth,
		wallStart: ws,
		mainStart: ws + o.WallWidth,
		mainEnd:   ws + o.WallWidth + o.PassageWidth,
		wallEnd:   ws + 2*o.WallWidth + o.PassageWidth,
	}
}

// Render draws the maze and returns the finished image.
func Render(g *maze.Grid, opts Options) (image.Image, error) {
	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}

	t := newTile(o)
	dc := gg.NewContext(g.Width*t.cell, g.Height*t.cell)
	dc.SetColor(o.Palette.Background)
	dc.Clear()

	// rect fills the half-open pixel box [x0,x1) x [y0,y1). Boxes reaching
	// outside the canvas are clipped by the context.
	rect := func(col color.Color, x0, y0, x1, y1 int) {
		dc.SetColor(col)
		dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0))
		dc.Fill()
	}

	size := g.Size()
	// The loop starts at -1 so the phantom row and column can close the
	// outer border with the same wall logic as real cells.
	for y := -1; y < g.Height; y++ {
		baseY := y * t.cell
		for x := -1; x < g.Width; x++ {
			baseX := x * t.cell
			inside := x >= 0 && y >= 0
			pos := y*g.Width + x

			var c maze.Cell
			if inside {
				c = g.Cells[pos]
			}

			rect(o.Palette.Passage,
				baseX+t.mainStart, baseY+t.mainStart, baseX+t.mainEnd, baseY+t.mainEnd)

			// The entrance is a carved opening from the phantom cell above
			// (0,0); the exit a carved opening below the last cell.
			openSouth := (y == -1 && x == 0) ||
				(inside && (c.Has(maze.South) || pos == size-1))
			if openSouth {
				rect(o.Palette.Passage,
					baseX+t.mainStart, baseY+t.mainEnd,
					baseX+t.mainEnd, baseY+t.cell+t.mainStart)
				rect(o.Palette.Wall,
					baseX+t.wallStart, baseY+t.mainEnd,
					baseX+t.mainStart, baseY+t.cell+t.mainStart)
				rect(o.Palette.Wall,
					baseX+t.mainEnd, baseY+t.mainEnd,
					baseX+t.wallEnd, baseY+t.cell+t.mainStart)
			} else {
				rect(o.Palette.Wall,
					baseX+t.wallStart, baseY+t.mainEnd,
					baseX+t.wallEnd, baseY+t.wallEnd)
				rect(o.Palette.Wall,
					baseX+t.wallStart, baseY+t.cell+t.wallStart,
					baseX+t.wallEnd, baseY+t.cell+t.mainStart)
			}

			if inside && c.Has(maze.East) {
				rect(o.Palette.Passage,
					baseX+t.mainEnd, baseY+t.mainStart,
					baseX+t.cell+t.mainStart, baseY+t.mainEnd)
				rect(o.Palette.Wall,
					baseX+t.wallEnd, baseY+t.wallStart,
					baseX+t.cell+t.wallStart, baseY+t.mainStart)
				rect(o.Palette.Wall,
					baseX+t.wallEnd, baseY+t.mainEnd,
					baseX+t.cell+t.wallStart, baseY+t.wallEnd)
			} else {
				rect(o.Palette.Wall,
					baseX+t.mainEnd, baseY+t.mainStart,
					baseX+t.wallEnd, baseY+t.mainEnd)
				rect(o.Palette.Wall,
					baseX+t.cell+t.wallStart, baseY+t.mainStart,
					baseX+t.cell+t.mainStart, baseY+t.mainEnd)
			}

			if !inside {
				continue
			}
			// Stubs marking the lane that dives under the crossing.
			switch c {
			case maze.WeaveVertical:
				rect(o.Palette.Wall,
					baseX+t.wallStart, baseY+t.mainStart,
					baseX+t.mainStart, baseY+t.mainEnd)
				rect(o.Palette.Wall,
					baseX+t.mainEnd, baseY+t.mainStart,
					baseX+t.wallEnd, baseY+t.mainEnd)
			case maze.WeaveHorizontal:
				rect(o.Palette.Wall,
					baseX+t.mainStart, baseY+t.wallStart,
					baseX+t.mainEnd, baseY+t.mainStart)
				rect(o.Palette.Wall,
					baseX+t.mainStart, baseY+t.mainEnd,
					baseX+t.mainEnd, baseY+t.wallEnd)
			}
		}
	}

	return dc.Image(), nil
}

// RenderPNG renders the maze and encodes it as PNG bytes.
func RenderPNG(g *maze.Grid, opts Options) ([]byte, error) {
	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}

	img, err := Render(g, o)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gg.NewContextForImage(img).EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
