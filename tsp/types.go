// Package tsp — option types, result types and the sentinel error set.
//
// All public solvers return ONLY the sentinels below (never fmt.Errorf
// replacements), so callers can match with errors.Is. No solver panics on
// user input; panics are reserved for programmer errors in private helpers.
package tsp

import "errors"

// Algo selects the evaluation strategy used by Solve.
type Algo int

const (
	// NaiveRecursive evaluates the recurrence directly without caching.
	// Exponential (O((n−1)!)); intended as a small-n correctness oracle.
	NaiveRecursive Algo = iota

	// TopDownMemo evaluates recursively over a memoization cache keyed by
	// (city, visited-set), recording the optimal successor per state.
	TopDownMemo

	// BottomUpTable fills the same cache iteratively in descending mask
	// order, then reconstructs the tour from the recorded choices.
	BottomUpTable
)

// String implements fmt.Stringer for log- and test-friendly output.
func (a Algo) String() string {
	switch a {
	case NaiveRecursive:
		return "naive"
	case TopDownMemo:
		return "memoized"
	case BottomUpTable:
		return "tabulated"
	default:
		return "unknown"
	}
}

const (
	// DefaultTolerance is the absolute tolerance used by the cost-matching
	// tour reconstruction (Options.CostMatching). Costs along different
	// summation orders need not match bit-for-bit, so exact equality is
	// unsafe; 1e-6 is wide enough for typical distance magnitudes.
	DefaultTolerance = 1e-6

	// MaxVertices caps the instance size so the n·2ⁿ tables cannot overflow
	// or silently exhaust memory. The practical ceiling is far lower
	// (n ≈ 20 on ordinary hardware).
	MaxVertices = 30
)

// Options configures a Solve call.
//
// Fields:
//   - Algo         — which evaluator to run (see Algo constants).
//   - CostMatching — tabulated solver only: reconstruct the tour by forward
//     cost-matching against the DP table instead of the recorded choice
//     table. This is the legacy scheme; the choice table is the primary
//     path and is immune to floating-point drift.
//   - Tolerance    — absolute tolerance for cost-matching; 0 means
//     DefaultTolerance. Negative values are rejected.
type Options struct {
	Algo         Algo
	CostMatching bool
	Tolerance    float64
}

// DefaultOptions returns the recommended configuration: the bottom-up
// tabulated evaluator with choice-table reconstruction.
func DefaultOptions() Options {
	return Options{Algo: BottomUpTable, Tolerance: DefaultTolerance}
}

// Stats reports work counters for a single solver invocation. They back the
// package's complexity guarantees: the naive evaluator performs
// Θ((n−1)!) recursive calls while the cached evaluators compute each of the
// at most n·2ⁿ states exactly once.
type Stats struct {
	// RecursiveCalls counts evaluator invocations (naive only).
	RecursiveCalls uint64

	// StatesComputed counts distinct (city, visited) states resolved and
	// written to the cache (memoized and tabulated only).
	StatesComputed uint64
}

// Result holds the outcome of a solver.
type Result struct {
	// Tour is the optimal visiting order: n+1 city indices with
	// Tour[0] == Tour[n] == 0 and each other city appearing exactly once.
	Tour []int

	// Cost is the total distance of the cycle, stabilized to 1e-9.
	Cost float64

	// Stats carries the work counters for this invocation.
	Stats Stats
}

var (
	// ErrDimensionMismatch is returned for a nil matrix, NaN entries, or
	// otherwise malformed input shape (also for invalid Options values).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare is returned when the distance matrix is not square or has
	// non-positive order.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNegativeWeight is returned when an off-diagonal distance is negative.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrNonZeroDiagonal is returned when a self-distance d[i][i] is not ~0.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal not zero")

	// ErrIncompleteGraph is returned when an off-diagonal entry is ±Inf.
	// The solvers require a complete graph; a missing edge would make
	// "no feasible continuation" reachable mid-computation.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrTooManyVertices is returned when n exceeds MaxVertices.
	ErrTooManyVertices = errors.New("tsp: instance too large for exact solve")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrReconstructDrift is returned when cost-matching reconstruction finds
	// no successor within tolerance. This is an internal invariant violation
	// (excessive floating-point drift or a table bug), not an input error.
	ErrReconstructDrift = errors.New("tsp: cost-matching reconstruction drifted")
)
