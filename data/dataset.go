// Package data loads delimited numeric datasets and turns them into the
// design matrix and label vector consumed by the linear package.
package data

import (
	"gonum.org/v1/gonum/mat"
)

// Dataset is an immutable row-major table of float64 values. The column
// count is fixed by the first row of the source.
type Dataset struct {
	rows, cols int
	data       []float64
}

var _ mat.Matrix = (*Dataset)(nil)

// NewDataset builds a Dataset from rows, which must all have the same length.
// It is mainly useful for tests and for callers with in-memory data.
func NewDataset(rows [][]float64) (*Dataset, error) {
	b := newBuilder()
	for i, row := range rows {
		if err := b.add(i+1, row); err != nil {
			return nil, err
		}
	}
	return b.build()
}

// Rows returns the number of examples.
func (d *Dataset) Rows() int { return d.rows }

// Cols returns the number of fields per row.
func (d *Dataset) Cols() int { return d.cols }

// Dims implements mat.Matrix.
func (d *Dataset) Dims() (r, c int) { return d.rows, d.cols }

// At returns field j of row i.
func (d *Dataset) At(i, j int) float64 {
	if i < 0 || i >= d.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= d.cols {
		panic(mat.ErrColAccess)
	}
	return d.data[i*d.cols+j]
}

// T implements mat.Matrix.
func (d *Dataset) T() mat.Matrix { return mat.Transpose{Matrix: d} }

// Column returns a copy of column j.
func (d *Dataset) Column(j int) []float64 {
	if j < 0 || j >= d.cols {
		panic(mat.ErrColAccess)
	}
	out := make([]float64, d.rows)
	for i := range out {
		out[i] = d.data[i*d.cols+j]
	}
	return out
}

// Row returns a copy of row i.
func (d *Dataset) Row(i int) []float64 {
	if i < 0 || i >= d.rows {
		panic(mat.ErrRowAccess)
	}
	out := make([]float64, d.cols)
	copy(out, d.data[i*d.cols:(i+1)*d.cols])
	return out
}
