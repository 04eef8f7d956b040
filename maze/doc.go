// SPDX-License-Identifier: MIT
// Package: lvmaze/maze

// Package maze is the shared grid/graph substrate for every builder and solver
// in lvmaze.
//
// What:
//
//   - Maze is a fixed W×H grid of cells created eagerly at construction.
//   - Open passages are stored in one AdjacencyList keyed by CellID.
//   - Each Cell carries an immutable CellID and a mutable Status render hint.
//   - Direction is one of four unit vectors: Up(0,+1), Left(+1,0),
//     Down(0,-1), Right(-1,0). Left increases x.
//
// Identity:
//
//   - CellIDs come from the Maze's own arena: id = y*W + x. They are never
//     reused within a Maze and there is no process-wide counter, so tests can
//     build mazes in parallel.
//   - Coordinate↔id lookups are O(1).
//
// Connectivity:
//
//   - Connect/Disconnect mutate both directions; the OneWay variants only
//     the source side.
//   - Touching a pair whose source or target falls outside the grid is a
//     silent no-op.
//   - Out-of-range queries return (zero, false) and never panic.
//
// Status:
//
//   - Status is a presentation hint only. Builders and solvers keep their
//     own visited/frontier/score bookkeeping and never branch on Status.
//   - ResetColors puts every cell back to Unvisited.
//
// Snapshots:
//
//   - Snapshot returns plain data (sizes, adjacency, statuses) and Restore
//     rebuilds an equivalent Maze. No serialization format is imposed; the
//     JSON tags are a convenience.
//
// Concurrency:
//
//   - A Maze is not safe for concurrent mutation. Exactly one driver owns a
//     Maze (and the builder or solver bound to it) at a time.
//
// Complexity:
//
//   - New:           O(W×H) time and memory.
//   - Connect/Has:   O(deg) where deg ≤ 4 for builder-produced mazes.
//   - String:        O(W×H).
package maze
