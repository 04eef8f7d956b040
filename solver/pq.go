// SPDX-License-Identifier: MIT
// Package: lvmaze/solver
//
// pq.go: min-heap frontier for A*.

package solver

import "github.com/katalvlaran/lvmaze/maze"

// FrontierEntry is one frontier record. Several entries may exist for the
// same cell; only the one whose G matches the current gScore is live.
type FrontierEntry struct {
	ID  maze.CellID `json:"id"`
	F   float64     `json:"f"`
	G   float64     `json:"g"`
	Seq uint64      `json:"seq"`
}

// frontier implements heap.Interface ordered by F, then by insertion Seq.
type frontier []FrontierEntry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by lower F; ties go to the earlier insertion.
func (pq frontier) Less(i, j int) bool {
	if pq[i].F != pq[j].F {
		return pq[i].F < pq[j].F
	}
	return pq[i].Seq < pq[j].Seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a FrontierEntry. Called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(FrontierEntry)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
