// SPDX-License-Identifier: MIT
package matrix

import "errors"

// Sentinel errors for the matrix package. All public operations MUST return
// these (optionally wrapped with fmt.Errorf("ctx: %w", ...)) and tests match
// them via errors.Is. No operation panics on user-triggered conditions.
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// the valid range of the receiver.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required
	// (point coordinates at ingestion time).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Matrix is the read/write view consumed by the tsp solvers.
//
// Implementations must be bounds-checked: At and Set return
// ErrIndexOutOfBounds instead of panicking.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(Rows·Cols).
	Clone() Matrix
}
