// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// disjoint_set.go: union-find over dense cell ids.

package builder

// disjointSet is a union-find with path compression and union by rank,
// indexed by cell id.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	s := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

// find returns the root of i, compressing the path on the way.
//
// Complexity: amortized O(α(n)).
func (s *disjointSet) find(i int) int {
	for s.parent[i] != i {
		// Point i at its grandparent.
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}
	return i
}

// union merges the sets of a and b. It reports false if they already
// shared a root.
func (s *disjointSet) union(a, b int) bool {
	ra, rb := s.find(a), s.find(b)
	if ra == rb {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case s.rank[ra] < s.rank[rb]:
		s.parent[ra] = rb
	case s.rank[ra] > s.rank[rb]:
		s.parent[rb] = ra
	default:
		s.parent[rb] = ra
		s.rank[ra]++
	}
	return true
}
