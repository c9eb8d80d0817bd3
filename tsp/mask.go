// Package tsp — visited-set bitmask and shared state-table plumbing.
//
// A VisitedSet is the canonical encoding of "which cities are already on the
// partial tour": bit j set means city j has been appended. City 0 anchors
// every tour, so its bit is set in every reachable mask. Masks are values —
// transitions produce a new mask, nothing is mutated in place.
package tsp

import "math/bits"

// VisitedSet is a bitmask of width n over city indices.
type VisitedSet int

// StartSet is the seed state mask: only city 0 visited.
const StartSet VisitedSet = 1

// FullSet returns the mask with all n bits set (every city visited).
func FullSet(n int) VisitedSet {
	return VisitedSet(1)<<n - 1
}

// Has reports whether city j is in the set.
func (v VisitedSet) Has(j int) bool {
	return v&(1<<j) != 0
}

// With returns a new set with city j added; the receiver is unchanged.
func (v VisitedSet) With(j int) VisitedSet {
	return v | 1<<j
}

// Count returns the number of visited cities (popcount).
func (v VisitedSet) Count() int {
	return bits.OnesCount(uint(v))
}

// stateIndex maps a (city, visited) state to its flat table offset.
// Tables are laid out city-major: city i owns the 2ⁿ-wide block [i<<n, (i+1)<<n).
func stateIndex(city int, visited VisitedSet, n int) int {
	return city<<n | int(visited)
}

// walkChoice replays a populated choice table into a closed tour.
//
// Starting from the seed state (0, StartSet), each step appends the recorded
// optimal successor and advances the mask, until all cities are visited; the
// closing 0 completes the cycle. The walk is a single deterministic pass of
// length n — no search happens at reconstruction time.
//
// Precondition: next[state] ≥ 0 for every state reachable from the seed
// (guaranteed after a complete fill of a valid instance).
//
// Complexity: O(n) time, O(n) space.
func walkChoice(next []int, n int) []int {
	var (
		tour    = make([]int, 0, n+1)
		visited = StartSet
		full    = FullSet(n)
		cur     = 0
		j       int
	)
	tour = append(tour, 0)
	for visited != full {
		j = next[stateIndex(cur, visited, n)]
		tour = append(tour, j)
		visited = visited.With(j)
		cur = j
	}

	// Return to the start to close the Hamiltonian cycle.
	return append(tour, 0)
}
