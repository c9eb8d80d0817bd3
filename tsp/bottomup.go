package tsp

import (
	"math"

	"github.com/katalvlaran/heldkarp/matrix"
)

// SolveTabulated fills the Held–Karp cache iteratively, bottom-up, instead
// of recursively.
//
// Fill order. A state (i, visited) depends only on states whose mask has
// exactly one more bit set, so any order that resolves larger masks first is
// valid. Descending integer order suffices — adding a bit always produces a
// numerically larger mask — and that invariant is what the loop below
// encodes. Only masks containing bit 0 are touched: the start city anchors
// the recursion and is "visited" in every reachable state.
//
// Outline:
//  1. Base layer: cost(i, FULL) = d(i,0) for every i, successor 0.
//  2. For visited from FULL−1 down to StartSet, skipping masks without
//     bit 0: for every in-mask city i, minimize d(i,j) + cost(j, visited∪{j})
//     over unvisited j, recording the minimizing j (lowest j wins ties).
//  3. Answer: cost(0, StartSet).
//
// Reconstruction follows the recorded choice table exactly as SolveMemoized
// does. With opts.CostMatching the choice table is ignored and the tour is
// rebuilt by forward cost-matching against the cost table under
// opts.Tolerance — the legacy scheme, kept for parity with table-only
// deployments; see reconstructByCost for its failure mode.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory, no recursion.
func SolveTabulated(dist matrix.Matrix, opts Options) (Result, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return Result{}, err
	}
	if n == 1 {
		return trivialResult(), nil
	}

	var (
		d      = flattenDist(dist, n)
		full   = FullSet(n)
		size   = n << n
		cost   = make([]float64, size)
		next   = make([]int, size)
		states uint64
	)
	for i := range cost {
		cost[i] = math.Inf(1)
		next[i] = -1
	}

	// Base layer: everything visited, return home from any endpoint.
	var i, idx int
	for i = 0; i < n; i++ {
		idx = stateIndex(i, full, n)
		cost[idx] = d[i*n]
		next[idx] = 0
		states++
	}

	// Main fill: masks descending, supersets strictly before subsets.
	var (
		visited VisitedSet
		j       int
		best    float64
		bestJ   int
		cand    float64
	)
	for visited = full - 1; visited >= StartSet; visited-- {
		if !visited.Has(0) {
			continue // unreachable: city 0 is always on the partial tour
		}
		for i = 0; i < n; i++ {
			// Only states whose current city is on the tour are ever queried.
			if !visited.Has(i) {
				continue
			}
			best = math.Inf(1)
			bestJ = -1
			for j = 0; j < n; j++ {
				if visited.Has(j) {
					continue
				}
				cand = d[i*n+j] + cost[stateIndex(j, visited.With(j), n)]
				if cand < best { // strict: lowest j wins ties
					best = cand
					bestJ = j
				}
			}
			idx = stateIndex(i, visited, n)
			cost[idx] = best
			next[idx] = bestJ
			states++
		}
	}

	total := cost[stateIndex(0, StartSet, n)]

	var tour []int
	if opts.CostMatching {
		tour, err = reconstructByCost(d, cost, n, opts.Tolerance)
		if err != nil {
			return Result{}, err
		}
	} else {
		tour = walkChoice(next, n)
	}

	return Result{
		Tour:  tour,
		Cost:  round1e9(total),
		Stats: Stats{StatesComputed: states},
	}, nil
}

// reconstructByCost rebuilds the optimal tour from the cost table alone by
// matching, at each step, the unvisited successor j whose table entry
// accounts for the remaining cost: |(cost(i,V) − cost(j,V∪{j})) − d(i,j)| ≤ tol.
//
// Real-valued distances summed in different orders rarely compare equal
// bit-for-bit, hence the tolerance (0 selects DefaultTolerance). If no
// candidate matches, the table and the matrix disagree beyond tol — an
// internal invariant violation reported as ErrReconstructDrift, not a
// recoverable input condition. Too tight a tolerance manufactures exactly
// this failure, which is why the choice-table walk is the primary path.
//
// Complexity: O(n) per step, O(n²) total.
func reconstructByCost(d, cost []float64, n int, tol float64) ([]int, error) {
	if tol == 0 {
		tol = DefaultTolerance
	}

	var (
		tour     = make([]int, 0, n+1)
		visited  = StartSet
		full     = FullSet(n)
		cur      = 0
		costFrom = cost[stateIndex(0, StartSet, n)]
		j        int
		costToGo float64
		matched  int
	)
	tour = append(tour, 0)
	for visited != full {
		matched = -1
		for j = 0; j < n; j++ {
			if visited.Has(j) {
				continue
			}
			costToGo = cost[stateIndex(j, visited.With(j), n)]
			if math.Abs((costFrom-costToGo)-d[cur*n+j]) <= tol {
				matched = j
				costFrom = costToGo
				break
			}
		}
		if matched < 0 {
			return nil, ErrReconstructDrift
		}
		tour = append(tour, matched)
		visited = visited.With(matched)
		cur = matched
	}

	return append(tour, 0), nil
}
