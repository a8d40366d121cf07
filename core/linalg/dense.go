// Package linalg provides the small dense matrix and vector types used by the
// regression core.
//
// Storage is a contiguous row-major buffer plus its shape. Only the operations
// the cost function and gradient descent need are offered, and every binary
// operation checks shapes before touching any element: an incompatible pair
// yields a *errors.DimensionError instead of a panic from deep inside a
// kernel. Both types satisfy gonum's mat.Matrix (and Vector satisfies
// mat.Vector), so they can be passed to gonum routines and formatted with
// mat.Formatted.
package linalg

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

// Dense is an immutable rows×cols matrix.
type Dense struct {
	rows, cols int
	data       []float64
}

var _ mat.Matrix = (*Dense)(nil)

// NewDense creates a rows×cols matrix backed by a copy of data, given in
// row-major order. A nil data yields a zero matrix.
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.NewValueError("linalg.NewDense", "negative dimension")
	}
	buf := make([]float64, rows*cols)
	if data != nil {
		if len(data) != rows*cols {
			return nil, errors.NewDimensionError("linalg.NewDense", rows*cols, len(data), 0)
		}
		copy(buf, data)
	}
	return &Dense{rows: rows, cols: cols, data: buf}, nil
}

// NewDenseFromRows builds a matrix from equally sized rows.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	cols := len(rows[0])
	buf := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(errors.NewDimensionError("linalg.NewDenseFromRows", cols, len(row), 1), "row %d", i)
		}
		buf = append(buf, row...)
	}
	return &Dense{rows: len(rows), cols: cols, data: buf}, nil
}

// wrapDense takes ownership of data without copying.
func wrapDense(rows, cols int, data []float64) *Dense {
	return &Dense{rows: rows, cols: cols, data: data}
}

// Dims returns the number of rows and columns.
func (m *Dense) Dims() (r, c int) { return m.rows, m.cols }

// At returns element (i, j). It panics when the index is out of range, as
// gonum matrices do.
func (m *Dense) At(i, j int) float64 {
	if i < 0 || i >= m.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.cols {
		panic(mat.ErrColAccess)
	}
	return m.data[i*m.cols+j]
}

// T returns an implicit transpose for use with gonum.
func (m *Dense) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Transpose returns a materialised cols×rows copy.
func (m *Dense) Transpose() *Dense {
	out := make([]float64, len(m.data))
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, v := range row {
			out[j*m.rows+i] = v
		}
	}
	return wrapDense(m.cols, m.rows, out)
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.rawRow(i))
	return out
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) []float64 {
	if j < 0 || j >= m.cols {
		panic(mat.ErrColAccess)
	}
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

func (m *Dense) rawRow(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(mat.ErrRowAccess)
	}
	return m.data[i*m.cols : (i+1)*m.cols]
}

// MulVec returns m·v. v must have cols(m) entries.
func (m *Dense) MulVec(v *Vector) (*Vector, error) {
	if v.Len() != m.cols {
		return nil, errors.NewDimensionError("linalg.MulVec", m.cols, v.Len(), 1)
	}
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = floats.Dot(m.rawRow(i), v.data)
	}
	return wrapVector(out), nil
}

// Mul returns a·b. cols(a) must equal rows(b).
func Mul(a, b *Dense) (*Dense, error) {
	if a.cols != b.rows {
		return nil, errors.NewDimensionError("linalg.Mul", a.cols, b.rows, 0)
	}
	out := make([]float64, a.rows*b.cols)
	for i := 0; i < a.rows; i++ {
		dst := out[i*b.cols : (i+1)*b.cols]
		for k, aik := range a.rawRow(i) {
			floats.AddScaled(dst, aik, b.rawRow(k))
		}
	}
	return wrapDense(a.rows, b.cols, out), nil
}
