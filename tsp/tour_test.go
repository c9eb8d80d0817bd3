package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/tsp"
)

func TestValidateTour(t *testing.T) {
	cases := []struct {
		name string
		tour []int
		n    int
		ok   bool
	}{
		{name: "valid 4-cycle", tour: []int{0, 2, 1, 3, 0}, n: 4, ok: true},
		{name: "valid trivial", tour: []int{0, 0}, n: 1, ok: true},
		{name: "wrong length", tour: []int{0, 1, 0}, n: 3, ok: false},
		{name: "not closed", tour: []int{0, 1, 2, 1}, n: 3, ok: false},
		{name: "wrong start", tour: []int{1, 0, 2, 1}, n: 3, ok: false},
		{name: "duplicate city", tour: []int{0, 1, 1, 0}, n: 3, ok: false},
		{name: "out of range", tour: []int{0, 1, 5, 0}, n: 3, ok: false},
		{name: "n zero", tour: []int{0}, n: 0, ok: false},
	}

	for _, tc := range cases {
		err := tsp.ValidateTour(tc.tour, tc.n)
		if tc.ok {
			require.NoError(t, err, tc.name)
		} else {
			require.ErrorIs(t, err, tsp.ErrDimensionMismatch, tc.name)
		}
	}
}

func TestTourCost(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	})

	got, err := tsp.TourCost(m, []int{0, 1, 2, 0})
	require.NoError(t, err)
	require.Equal(t, 7.0, got) // 1 + 2 + 4

	// Reversed orientation costs the same on a symmetric matrix.
	rev, err := tsp.TourCost(m, tsp.ReverseTour([]int{0, 1, 2, 0}))
	require.NoError(t, err)
	require.Equal(t, got, rev)
}

func TestTourCost_Invalid(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 1}, {1, 0}})

	_, err := tsp.TourCost(nil, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourCost(m, []int{0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourCost(m, []int{0, 5, 0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	bad := mustDense(t, [][]float64{{0, math.Inf(1)}, {1, 0}})
	_, err = tsp.TourCost(bad, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrIncompleteGraph)

	neg := mustDense(t, [][]float64{{0, -2}, {1, 0}})
	_, err = tsp.TourCost(neg, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)
}

func TestReverseTour(t *testing.T) {
	require.Equal(t, []int{0, 3, 1, 2, 0}, tsp.ReverseTour([]int{0, 2, 1, 3, 0}))
	require.Equal(t, []int{0, 0}, tsp.ReverseTour([]int{0, 0}))
}
