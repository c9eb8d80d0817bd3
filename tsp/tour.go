// Package tsp — tour and cost utilities shared by the evaluators and tests.
//
// These helpers operate on tour structure and cost only; they never consult
// the DP tables. Strict sentinels from types.go on any invalid input.
package tsp

import (
	"math"

	"github.com/katalvlaran/heldkarp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// ValidateTour enforces the Hamiltonian-cycle invariants of a solver result:
// len(tour) == n+1, tour[0] == tour[n] == 0, and every city in [0..n-1]
// appears exactly once among positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != 0 || tour[n] != 0 {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums the edge costs along the closed tour
// tour[0]→tour[1]→…→tour[len-1], validating each edge on the way.
//
// Contract:
//   - tour represents a closed cycle: len(tour) ≥ 2, indices within [0..n-1].
//   - dist square; per-edge checks reject NaN (ErrDimensionMismatch),
//     ±Inf (ErrIncompleteGraph) and negative weights (ErrNegativeWeight)
//     even when validateAll already ran.
//
// The sum is stabilized to 1e-9 like all solver costs, so a round-trip
// check against a solver's reported Cost holds within that precision.
//
// Complexity: O(n) time, O(1) space.
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}

	var (
		n   = nr
		sum float64
		i   int
		u   int
		v   int
		w   float64
		err error
		L   = len(tour) - 1
	)
	for i = 0; i < L; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w, err = dist.At(u, v)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(w, 0) {
			return 0, ErrIncompleteGraph
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return round1e9(sum), nil
}

// ReverseTour returns the same cycle walked in the opposite direction,
// still anchored at city 0: [0, a, b, …, 0] becomes [0, …, b, a, 0].
// Useful for symmetric instances, where both orientations cost the same.
//
// Complexity: O(n) time, O(n) space.
func ReverseTour(tour []int) []int {
	out := make([]int, len(tour))
	var i int
	for i = 0; i < len(tour); i++ {
		out[i] = tour[len(tour)-1-i]
	}

	return out
}
