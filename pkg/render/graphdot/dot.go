// Package graphdot exports the maze's connectivity graph as Graphviz DOT
// and renders it to SVG or PNG. This is a debugging view: it shows the
// spanning structure the generator built, not the walls a player would see.
//
// Each cell is a node pinned to its grid position. A weave crossing is
// split into two overlapping nodes, one per lane, so the picture reflects
// the real connectivity: the lanes cross without touching. With a correct
// generator the graph is always a tree.
package graphdot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/d0sboots/maze-project/pkg/maze"
)

// ToDOT converts the grid's connectivity graph to DOT. The result can be
// rendered with [RenderSVG] or [RenderPNG], or fed to any Graphviz tool.
func ToDOT(g *maze.Grid) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=point, width=0.12];\n")
	buf.WriteString("  edge [penwidth=2];\n\n")

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			pos := g.Index(x, y)
			if !g.Cells[pos].IsWeave() {
				fmt.Fprintf(&buf, "  %q [pos=\"%d,%d!\"];\n", cellName(x, y), x, -y)
				continue
			}
			// The two lane nodes share the cell's position on purpose:
			// the lanes cross there without connecting.
			fmt.Fprintf(&buf, "  %q [pos=\"%d,%d!\", color=firebrick];\n", laneName("h", x, y), x, -y)
			fmt.Fprintf(&buf, "  %q [pos=\"%d,%d!\", color=steelblue];\n", laneName("v", x, y), x, -y)
		}
	}

	buf.WriteString("\n")
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			if c.Has(maze.East) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", hNode(g, x, y), hNode(g, x+1, y))
			}
			if c.Has(maze.South) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", vNode(g, x, y), vNode(g, x, y+1))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func cellName(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

func laneName(lane string, x, y int) string { return fmt.Sprintf("%s%d,%d", lane, x, y) }

// hNode names the endpoint an east-west passage attaches to: the cell
// itself, or its horizontal lane node if the cell is a crossing.
func hNode(g *maze.Grid, x, y int) string {
	if g.At(x, y).IsWeave() {
		return laneName("h", x, y)
	}
	return cellName(x, y)
}

// vNode is the north-south counterpart of hNode.
func vNode(g *maze.Grid, x, y int) string {
	if g.At(x, y).IsWeave() {
		return laneName("v", x, y)
	}
	return cellName(x, y)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
