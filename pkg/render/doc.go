// Package render groups the maze renderers.
//
// # Overview
//
// Each subpackage consumes a finished grid read-only and is a pure function
// of the grid plus its own options:
//
//   - [text]: Unicode box-drawing output for terminals
//   - [raster]: PNG tiles drawn with fogleman/gg
//   - [graphdot]: Graphviz DOT export of the connectivity graph, with
//     SVG and PNG rendering for debugging
//
// All renderers assume the entrance at the top-left cell and the exit at
// the bottom-right cell; the generator itself does not know about either.
//
// [text]: github.com/d0sboots/maze-project/pkg/render/text
// [raster]: github.com/d0sboots/maze-project/pkg/render/raster
// [graphdot]: github.com/d0sboots/maze-project/pkg/render/graphdot
package render
