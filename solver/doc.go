// SPDX-License-Identifier: MIT
// Package: lvmaze/solver

// Package solver searches a built maze.Maze for a path between two cells,
// exposing each algorithm as a resumable step machine.
//
// What:
//
//   - AStar: weighted A* with f = g·DistanceFactor + h·HeuristicFactor and
//     an injected Heuristic (Zero, Manhattan, Euclidean or any func).
//     NewDijkstra, NewManhattan and NewEuclidean are presets.
//   - Tremaux: mark-and-backtrack wall follower with an explicit stack.
//
// Contract:
//
//   - Step performs one unit of search and reports whether it did work.
//   - Run steps to completion and returns Solved().
//   - IsFinished is monotonic; Solved tells "finished, solved" apart from
//     "finished, unsolvable". Unsolvable is a normal outcome, not an error.
//   - Steps returns a lazy, non-restartable iter.Seq[bool].
//   - Solvers only read passages; they write cell statuses as render hints
//     (Queued, Current, Processed, InPath) and never branch on them.
//
// Optimality:
//
//   - Zero (Dijkstra) and Manhattan with DistanceFactor ≥ HeuristicFactor
//     and DistanceFactor > 0 return shortest paths on unit-cost passages.
//   - Euclidean carries no shortest-path promise.
//   - Tremaux returns a valid walk, not necessarily a shortest one.
//
// Errors:
//
//   - ErrNilMaze, ErrMazeClosed, ErrNilCell, ErrForeignCell, ErrSameEndpoints:
//     constructor validation in that order.
//   - ErrBadFactor: negative, NaN or infinite score weights.
//   - ErrNilHeuristic: NewAStar without a heuristic.
//   - ErrInvalidState: snapshot does not fit the maze.
//
// Complexity:
//
//   - AStar:   O((V + E) log V) time, O(V + E) memory (lazy decrease-key).
//   - Tremaux: O(V + E) steps, O(V) memory.
package solver
