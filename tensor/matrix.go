package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major numeric matrix tagged with its Device and
// DType. Zero-width (and zero-row) matrices are valid; their backing store is
// empty but dimensions are preserved. Matrices are written only during
// construction; converters treat them as immutable afterwards.
type Matrix struct {
	rows, cols int
	data       *mat.Dense // nil when rows*cols == 0
	device     Device
	dtype      DType
}

// Zeros returns an all-zero rows×cols Matrix on the given device.
// cols (or rows) may be zero; the result is still a real object.
// Complexity: O(rows × cols).
func Zeros(rows, cols int, device Device, dtype DType) *Matrix {
	m := &Matrix{rows: rows, cols: cols, device: device, dtype: dtype}
	if rows > 0 && cols > 0 {
		m.data = mat.NewDense(rows, cols, nil)
	}
	return m
}

// FromRows builds a Matrix from row slices. All rows must have length cols;
// short inputs panic via gonum. Values are truncated to single precision when
// dtype is Float32. Complexity: O(rows × cols).
func FromRows(rows [][]float64, cols int, device Device, dtype DType) *Matrix {
	m := Zeros(len(rows), cols, device, dtype)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

// Dims returns the matrix dimensions.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Device returns the placement tag.
func (m *Matrix) Device() Device { return m.device }

// DType returns the numeric-width tag.
func (m *Matrix) DType() DType { return m.dtype }

// At returns the value at (i, j). Out-of-range access panics, as with gonum.
func (m *Matrix) At(i, j int) float64 {
	m.check(i, j)
	return m.data.At(i, j)
}

// Set writes v at (i, j), truncating to float32 precision for Float32
// matrices. Out-of-range access panics.
func (m *Matrix) Set(i, j int, v float64) {
	m.check(i, j)
	if m.dtype == Float32 {
		v = float64(float32(v))
	}
	m.data.Set(i, j, v)
}

// Row returns a copy of row i. The copy is empty (non-nil) for zero-width
// matrices, so callers can range over it uniformly.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("tensor: row %d out of range [0,%d)", i, m.rows))
	}
	out := make([]float64, m.cols)
	if m.data != nil {
		mat.Row(out, i, m.data)
	}
	return out
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("tensor: column %d out of range [0,%d)", j, m.cols))
	}
	out := make([]float64, m.rows)
	if m.data != nil {
		mat.Col(out, j, m.data)
	}
	return out
}

// SelectRows returns a new Matrix holding the given rows of m, in the given
// order. Used to align edge feature matrices with surviving edges.
// Complexity: O(len(idx) × cols).
func (m *Matrix) SelectRows(idx []int) *Matrix {
	out := Zeros(len(idx), m.cols, m.device, m.dtype)
	for i, r := range idx {
		for j := 0; j < m.cols; j++ {
			out.Set(i, j, m.At(r, j))
		}
	}
	return out
}

// Dense exposes the backing gonum matrix for numeric interop. It is nil for
// dimensionless matrices. Callers must not mutate it.
func (m *Matrix) Dense() *mat.Dense { return m.data }

func (m *Matrix) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("tensor: (%d,%d) out of range [0,%d)×[0,%d)", i, j, m.rows, m.cols))
	}
}
