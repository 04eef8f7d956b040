// SPDX-License-Identifier: MIT
// Package: lvmaze/render

// Package render turns a maze.Maze into something a person can look at.
//
// What:
//
//   - ASCII: "+---+" wall drawing with one status glyph per cell.
//   - Formatted: cell ids joined by passage arrows (-, >, <, |, v, ^), which
//     also shows one-way passages.
//   - Palette + Painter: map each maze.Status to a tcell.Style and paint the
//     maze on any tcell.Screen (a terminal or a SimulationScreen in tests).
//
// Orientation: x grows to the right and y grows upwards, so the highest row
// is drawn first. Because Left is (+1,0), a Left passage from (x,y) is the
// opening on the right-hand side of the drawn cell.
//
// render only reads the maze. The core packages never import it.
package render
