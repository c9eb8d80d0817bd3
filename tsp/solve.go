// Package tsp — unified dispatcher over the three evaluators.
package tsp

import "github.com/katalvlaran/heldkarp/matrix"

// Solve routes to the evaluator selected by opts.Algo.
//
// All evaluators agree on the optimal cost for every valid input; the cached
// ones differ from the naive evaluator only in running time, and from each
// other only in fill order. Validation happens inside the chosen evaluator
// so that direct calls and dispatched calls behave identically.
//
// Errors: strict sentinels from types.go; ErrUnsupportedAlgorithm for an
// Algo value outside the known set.
//
// Complexity: per the chosen evaluator —
//   - NaiveRecursive: O((n−1)!).
//   - TopDownMemo, BottomUpTable: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func Solve(dist matrix.Matrix, opts Options) (Result, error) {
	switch opts.Algo {
	case NaiveRecursive:
		return SolveNaive(dist, opts)
	case TopDownMemo:
		return SolveMemoized(dist, opts)
	case BottomUpTable:
		return SolveTabulated(dist, opts)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
