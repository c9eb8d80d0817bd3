// Package tsp_test provides lightweight testing helpers shared across the
// *_test.go files in this package. The helpers are intentionally minimal and
// avoid duplicating functionality that already lives in focused test files.
package tsp_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/tsp"
)

// -----------------------------------------------------------------------------
// Constants — single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the tolerance for cross-evaluator cost comparisons; the
	// evaluators share a summation order, so this mostly guards round1e9.
	epsTiny = 1e-9

	// epsLoose is the relaxed tolerance for geometric reference costs quoted
	// to limited precision (scenario B).
	epsLoose = 1e-3
)

// Reference instances from the classic 2-D scenarios: a 4-city square with
// optimal cost 16 and a 5-city cluster with optimal cost ≈ 15.7733871.
var (
	squarePts  = []matrix.Point{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 4}}
	clusterPts = []matrix.Point{
		{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 3}, {X: 4, Y: 0}, {X: 1, Y: 2},
	}
)

// solveFunc is the common signature of the three evaluators.
type solveFunc func(matrix.Matrix, tsp.Options) (tsp.Result, error)

// allSolvers enumerates the evaluators by name for table-driven equivalence
// tests. Order is stable for deterministic test output.
func allSolvers() []struct {
	name  string
	solve solveFunc
} {
	return []struct {
		name  string
		solve solveFunc
	}{
		{name: "naive", solve: tsp.SolveNaive},
		{name: "memoized", solve: tsp.SolveMemoized},
		{name: "tabulated", solve: tsp.SolveTabulated},
	}
}

// euclid builds the symmetric Euclidean metric of pts, failing the test on
// builder errors so call sites stay one-liners.
func euclid(t *testing.T, pts []matrix.Point) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewEuclidean(pts)
	if err != nil {
		t.Fatalf("NewEuclidean: %v", err)
	}

	return m
}

// mustDense wraps NewDenseFromRows for literal matrices in tests.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// cycleDist builds integer distances along an n-cycle:
// dist(i,j) = min(|i-j|, n-|i-j|). The optimal tour cost is exactly n.
func cycleDist(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d = math.Abs(float64(i - j))
			rows[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return mustDense(t, rows)
}

// ripplePts places n points on a slightly rippled circle: a deterministic
// symmetric instance without cost ties between distinct tours.
func ripplePts(n int) []matrix.Point {
	pts := make([]matrix.Point, n)
	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.02*float64((i*5)%7) // deterministic ripple, breaks ties
		pts[i] = matrix.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return pts
}

// mustFloatClose asserts |got-want| ≤ abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (abs=%.1e)", got, want, abs)
	}
}

// mustTourEitherOrientation asserts that got equals want or want walked in
// the opposite direction — on a symmetric instance both orientations of the
// optimal cycle are equally valid.
func mustTourEitherOrientation(t *testing.T, got, want []int) {
	t.Helper()
	if slices.Equal(got, want) || slices.Equal(got, tsp.ReverseTour(want)) {
		return
	}
	t.Fatalf("tour mismatch:\n got:  %v\n want: %v (either orientation)", got, want)
}

// factorial is exact for the small arguments used in blow-up assertions.
func factorial(n int) uint64 {
	var out uint64 = 1
	for i := 2; i <= n; i++ {
		out *= uint64(i)
	}

	return out
}
