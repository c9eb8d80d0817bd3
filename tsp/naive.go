package tsp

import (
	"math"

	"github.com/katalvlaran/heldkarp/matrix"
)

// SolveNaive evaluates the Held–Karp recurrence by direct recursion, with no
// caching of subproblems.
//
// The recursion carries the partial tour downward, so the optimal path falls
// out of the same pass that finds the optimal cost. Every branch re-solves
// overlapping subproblems, which is exactly what makes this evaluator the
// reference implementation: it is short enough to be obviously correct and
// slow enough to demonstrate why the cached evaluators exist.
//
// Ties are broken toward the lowest city index (first strict improvement in
// increasing j order), matching SolveMemoized and SolveTabulated.
//
// Contract:
//   - dist square, non-negative, zero diagonal, no ±Inf (see validateAll).
//   - n == 1 yields cost 0 and tour [0,0].
//
// Complexity: O((n−1)!) time, O(n²) space for path prefixes on the stack.
// Intended for n ≲ 10 or as a test oracle.
func SolveNaive(dist matrix.Matrix, opts Options) (Result, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return Result{}, err
	}
	if n == 1 {
		return trivialResult(), nil
	}

	e := &naiveEvaluator{d: flattenDist(dist, n), n: n, full: FullSet(n)}
	cost, tour := e.visit(0, StartSet, []int{0})

	return Result{
		Tour:  tour,
		Cost:  round1e9(cost),
		Stats: Stats{RecursiveCalls: e.calls},
	}, nil
}

// naiveEvaluator bundles the read-only instance data threaded through the
// recursion, plus the call counter backing Stats.
type naiveEvaluator struct {
	d     []float64 // row-major distances, d[i*n+j]
	n     int
	full  VisitedSet
	calls uint64
}

// visit returns the minimum cost to complete a tour from city i — visiting
// every city absent from visited, then returning to 0 — together with the
// full tour extending prefix. prefix is never mutated: each branch extends
// into a fresh slice, so sibling branches cannot alias each other.
func (e *naiveEvaluator) visit(i int, visited VisitedSet, prefix []int) (float64, []int) {
	e.calls++

	// Base case: everything visited, close the cycle back to 0.
	if visited == e.full {
		return e.d[i*e.n], appendCity(prefix, 0)
	}

	var (
		best     = math.Inf(1)
		bestTour []int
		j        int
		cand     float64
	)
	for j = 0; j < e.n; j++ {
		if visited.Has(j) {
			continue
		}
		subCost, subTour := e.visit(j, visited.With(j), appendCity(prefix, j))
		cand = e.d[i*e.n+j] + subCost
		if cand < best {
			best = cand
			bestTour = subTour
		}
	}

	return best, bestTour
}

// appendCity copies prefix into a fresh slice with city appended, so the
// recursion never shares backing arrays between branches.
func appendCity(prefix []int, city int) []int {
	out := make([]int, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = city

	return out
}
