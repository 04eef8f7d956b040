// SPDX-License-Identifier: MIT
// Package: lvmaze/builder

// Package builder carves passages into a maze.Maze as resumable step machines.
//
// What:
//
//   - DFS: iterative recursive-backtracker (long corridors).
//   - BFS: breadth-first flood from the start (short radial corridors).
//   - Eller: row-by-row set merging over a union-find partition.
//   - Imperfect: wraps any of the above and flips
//     floor((W−1)·(H−1)·percent/100) random walls afterwards.
//
// Contract:
//
//   - Step performs one unit of work and reports whether it did any.
//   - Run calls Step until it returns false and reports whether any step
//     did work during the call.
//   - IsFinished is a monotonic flag set by the first Step that finds
//     nothing left to do.
//   - Steps returns an iter.Seq[bool] that drives the same state machine.
//     It is lazy, finite and non-restartable.
//
// Step-by-step driving, Run and ranging over Steps are interchangeable: for
// a fixed size, start and seed they leave bit-identical passages.
//
// Determinism:
//
//   - Every builder owns a math/rand stream seeded from the caller's seed
//     (seed==0 ⇒ 1). Imperfect draws toggles from a second stream derived
//     with a SplitMix64 mix, so Imperfect with percent 0 is exactly its base.
//
// Snapshots:
//
//   - Snapshot returns plain data (stack/queue, visited flags, partition,
//     RNG seed and draw count). RestoreDFS/RestoreBFS/RestoreEller/
//     RestoreImperfect resume it on a maze restored with maze.Restore.
//
// Errors:
//
//   - ErrNilMaze, ErrMazeClosed: constructor got an unusable maze.
//   - ErrStartOutOfBounds: start position off the grid.
//   - ErrBadPercent: imperfection percent outside [0,100].
//   - ErrNilBuilder: NewImperfect without a base.
//   - ErrInvalidState: snapshot does not fit the maze.
//
// Complexity:
//
//   - DFS:   2·W·H−1 working steps, O(1) each.
//   - BFS:   W·H working steps, O(1) each.
//   - Eller: 2·H−1 working steps, O(W·α) each.
package builder
