// SPDX-License-Identifier: MIT
package matrix

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// Compile-time interface compliance.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Stages:
//  1. Validate: rows and cols must be > 0 (ErrInvalidDimensions otherwise).
//  2. Prepare:  allocate the flat backing slice in one shot.
//  3. Finalize: return the wrapped Dense.
//
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a [][]float64 literal.
// Every row must have the same length; the input is copied, not aliased.
//
// Complexity: O(r·c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	if c == 0 {
		return nil, ErrInvalidDimensions
	}

	var (
		d   *Dense
		err error
		i   int
	)
	d, err = NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i = 0; i < r; i++ {
		// Ragged input violates the rectangular contract.
		if len(rows[i]) != c {
			return nil, ErrInvalidDimensions
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat offset for (row, col) or reports out-of-bounds.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns an independent deep copy of the receiver.
// Complexity: O(r·c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row returns a read-only view of row i (aliases internal storage).
// Returns nil when i is out of range. Intended for hot loops that have
// already validated the shape; mutating the returned slice is undefined.
//
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}

	return m.data[i*m.c : (i+1)*m.c]
}
