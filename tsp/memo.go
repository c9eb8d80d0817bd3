package tsp

import (
	"math"

	"github.com/katalvlaran/heldkarp/matrix"
)

// SolveMemoized evaluates the Held–Karp recurrence top-down over a
// memoization cache keyed by (current city, visited-set bitmask).
//
// Each of the at most n·2ⁿ states is computed exactly once; an entry is
// final the moment it is written (write-once cache), which is what makes
// both memoization and the later tour walk safe. Alongside each cost the
// solver records the successor city that achieved the minimum, so the
// optimal tour is reconstructed afterwards by a single O(n) walk — no
// search and no floating-point comparisons at reconstruction time.
//
// The cache lives in a solver struct and is threaded explicitly, not
// captured by a closure: which table a call depends on is visible in the
// type, and the state is testable in isolation.
//
// Contract: as SolveNaive; the answer equals SolveNaive's on every valid
// input, in far fewer steps.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory, recursion depth ≤ n.
func SolveMemoized(dist matrix.Matrix, opts Options) (Result, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return Result{}, err
	}
	if n == 1 {
		return trivialResult(), nil
	}

	s := newMemoSolver(flattenDist(dist, n), n)
	cost := s.visit(0, StartSet)

	return Result{
		Tour:  walkChoice(s.next, n),
		Cost:  round1e9(cost),
		Stats: Stats{StatesComputed: s.states},
	}, nil
}

// memoSolver owns the per-invocation DP state. Tables are preallocated to
// the full n·2ⁿ extent up front — the size is known before the first visit,
// and per-state allocation would dominate the runtime.
type memoSolver struct {
	d    []float64 // row-major distances, d[i*n+j]
	n    int
	full VisitedSet

	// cost[stateIndex(i,v,n)] is the minimum cost to finish the tour from
	// state (i,v). +Inf marks "not computed yet"; every resolved state is
	// finite because the instance is complete with finite weights.
	cost []float64

	// next[stateIndex(i,v,n)] is the optimal successor city for the state;
	// 0 in a full-mask state means "return to start". -1 marks unset.
	next []int

	states uint64
}

func newMemoSolver(d []float64, n int) *memoSolver {
	size := n << n // n cities × 2ⁿ masks
	s := &memoSolver{
		d:    d,
		n:    n,
		full: FullSet(n),
		cost: make([]float64, size),
		next: make([]int, size),
	}
	for i := range s.cost {
		s.cost[i] = math.Inf(1)
		s.next[i] = -1
	}

	return s
}

// visit resolves state (i, visited), memoizing on first computation.
func (s *memoSolver) visit(i int, visited VisitedSet) float64 {
	idx := stateIndex(i, visited, s.n)

	// Cache hit: the entry is final once written.
	if !math.IsInf(s.cost[idx], 1) {
		return s.cost[idx]
	}
	s.states++

	// Base case: all cities visited, the only move left is home to 0.
	if visited == s.full {
		s.cost[idx] = s.d[i*s.n]
		s.next[idx] = 0

		return s.cost[idx]
	}

	var (
		best  = math.Inf(1)
		bestJ = -1
		j     int
		cand  float64
	)
	for j = 0; j < s.n; j++ {
		if visited.Has(j) {
			continue
		}
		cand = s.d[i*s.n+j] + s.visit(j, visited.With(j))
		if cand < best { // strict: lowest j wins ties
			best = cand
			bestJ = j
		}
	}

	s.cost[idx] = best
	s.next[idx] = bestJ

	return best
}
