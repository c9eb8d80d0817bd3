// SPDX-License-Identifier: MIT
package matrix

import "math"

// Point is a location in the Euclidean plane.
type Point struct {
	X, Y float64
}

// NewEuclidean builds the complete symmetric distance matrix of the given
// points: out[i][j] = hypot(p_i - p_j), with exact zeros on the diagonal.
//
// Contracts:
//   - len(pts) ≥ 1 (ErrInvalidDimensions otherwise).
//   - All coordinates finite (ErrNaNInf otherwise).
//   - Output is symmetric, non-negative, zero-diagonal — exactly the shape
//     the tsp solvers validate against.
//
// Complexity: O(n²) time and memory.
func NewEuclidean(pts []Point) (*Dense, error) {
	n := len(pts)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}

	// Reject non-finite coordinates before allocating the full matrix.
	var i, j int
	for i = 0; i < n; i++ {
		if math.IsNaN(pts[i].X) || math.IsInf(pts[i].X, 0) ||
			math.IsNaN(pts[i].Y) || math.IsInf(pts[i].Y, 0) {
			return nil, ErrNaNInf
		}
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	// Fill the upper triangle and mirror; diagonal stays exactly zero.
	var dx, dy, w float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i].X - pts[j].X
			dy = pts[i].Y - pts[j].Y
			w = math.Hypot(dx, dy) // stable sqrt(dx²+dy²)
			d.data[i*n+j] = w
			d.data[j*n+i] = w
		}
	}

	return d, nil
}
