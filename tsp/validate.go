// Package tsp — input validation shared by all three evaluators.
//
// Validation runs at call entry, before any table is allocated; a solver
// never returns a partial result. Only sentinel errors from types.go are
// produced — no logging, no panics on user input.
package tsp

import (
	"math"

	"github.com/katalvlaran/heldkarp/matrix"
)

// diagTol is the structural tolerance for the zero-diagonal check. It is
// independent from Options.Tolerance, which governs cost-matching only.
const diagTol = 1e-12

// validateAll verifies Options and the distance matrix, returning the matrix
// order n on success.
//
// Contract:
//   - dist non-nil, square, 1 ≤ n ≤ MaxVertices.
//   - Diagonal ≈ 0 within diagTol; off-diagonal finite and non-negative.
//   - opts.Tolerance ≥ 0.
//
// Complexity: O(n²) time, O(1) space.
func validateAll(dist matrix.Matrix, opts Options) (int, error) {
	// Stage 1: Options-only sanity. A negative tolerance would invert the
	// acceptance logic of cost-matching reconstruction.
	if opts.Tolerance < 0 {
		return 0, ErrDimensionMismatch
	}

	// Stage 2: shape.
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr > MaxVertices {
		return 0, ErrTooManyVertices
	}
	n := nr

	// Stage 3: values — diagonal first, then the off-diagonal scan.
	var (
		i, j int
		w    float64
		err  error
		abs  float64
	)
	for i = 0; i < n; i++ {
		w, err = dist.At(i, i)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrDimensionMismatch
		}
		abs = w
		if abs < 0 {
			abs = -abs
		}
		if abs > diagTol {
			return 0, ErrNonZeroDiagonal
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			w, err = dist.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(w) {
				return 0, ErrDimensionMismatch
			}
			if w < 0 {
				return 0, ErrNegativeWeight
			}
			// The evaluators assume a complete graph: every transition must
			// have a finite cost.
			if math.IsInf(w, 0) {
				return 0, ErrIncompleteGraph
			}
		}
	}

	return n, nil
}

// flattenDist copies dist into one row-major []float64 of length n².
// The evaluators index it as d[i*n+j] inside their hot loops, avoiding
// interface-call overhead per transition. *matrix.Dense rows are copied
// wholesale via the Row fast path.
//
// Must be called after validateAll; errors from At are not expected here.
//
// Complexity: O(n²) time and memory.
func flattenDist(dist matrix.Matrix, n int) []float64 {
	d := make([]float64, n*n)

	if dd, ok := dist.(*matrix.Dense); ok {
		var i int
		for i = 0; i < n; i++ {
			copy(d[i*n:(i+1)*n], dd.Row(i))
		}

		return d
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w, _ = dist.At(i, j) // shape already validated
			d[i*n+j] = w
		}
	}

	return d
}

// trivialResult is the degenerate n==1 instance: the salesman is already
// home, so the tour is [0,0] at zero cost.
func trivialResult() Result {
	return Result{Tour: []int{0, 0}, Cost: 0}
}
