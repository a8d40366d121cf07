package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

// Vector is an immutable column vector. Every operation returns a new
// Vector; none writes into its operands.
type Vector struct {
	data []float64
}

var _ mat.Vector = (*Vector)(nil)

// NewVector returns a vector holding a copy of data.
func NewVector(data []float64) *Vector {
	buf := make([]float64, len(data))
	copy(buf, data)
	return &Vector{data: buf}
}

// Zeros returns a zero vector of length n.
func Zeros(n int) *Vector {
	return &Vector{data: make([]float64, n)}
}

func wrapVector(data []float64) *Vector {
	return &Vector{data: data}
}

// Len returns the number of entries.
func (v *Vector) Len() int { return len(v.data) }

// AtVec returns entry i.
func (v *Vector) AtVec(i int) float64 { return v.data[i] }

// Dims returns (Len(), 1).
func (v *Vector) Dims() (r, c int) { return len(v.data), 1 }

// At returns entry (i, 0).
func (v *Vector) At(i, j int) float64 {
	if j != 0 {
		panic(mat.ErrColAccess)
	}
	if i < 0 || i >= len(v.data) {
		panic(mat.ErrRowAccess)
	}
	return v.data[i]
}

// T returns an implicit 1×n transpose for use with gonum.
func (v *Vector) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// RawVector returns a copy of the entries.
func (v *Vector) RawVector() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector { return NewVector(v.data) }

// String formats v as a gonum column.
func (v *Vector) String() string {
	return fmt.Sprintf("%v", mat.Formatted(v, mat.Squeeze()))
}

// Sub returns a - b.
func Sub(a, b *Vector) (*Vector, error) {
	if a.Len() != b.Len() {
		return nil, errors.NewDimensionError("linalg.Sub", a.Len(), b.Len(), 0)
	}
	out := make([]float64, a.Len())
	floats.SubTo(out, a.data, b.data)
	return wrapVector(out), nil
}

// Scale returns s·v.
func Scale(s float64, v *Vector) *Vector {
	out := make([]float64, v.Len())
	floats.ScaleTo(out, s, v.data)
	return wrapVector(out)
}

// AddScaled returns a + alpha·b.
func AddScaled(a *Vector, alpha float64, b *Vector) (*Vector, error) {
	if a.Len() != b.Len() {
		return nil, errors.NewDimensionError("linalg.AddScaled", a.Len(), b.Len(), 0)
	}
	out := make([]float64, a.Len())
	floats.AddScaledTo(out, a.data, alpha, b.data)
	return wrapVector(out), nil
}

// Dot returns the inner product of a and b.
func Dot(a, b *Vector) (float64, error) {
	if a.Len() != b.Len() {
		return 0, errors.NewDimensionError("linalg.Dot", a.Len(), b.Len(), 0)
	}
	return floats.Dot(a.data, b.data), nil
}

// Pow raises every entry to the integer exponent. The result has the same
// length as v.
func Pow(v *Vector, exponent int) *Vector {
	out := make([]float64, v.Len())
	for i, x := range v.data {
		out[i] = powi(x, exponent)
	}
	return wrapVector(out)
}

// powi computes x**n by binary exponentiation, so Pow(v, 2) is exactly x*x.
func powi(x float64, n int) float64 {
	if n < 0 {
		return 1 / powi(x, -n)
	}
	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

// Sum returns the total of all entries.
func Sum(v *Vector) float64 {
	return floats.Sum(v.data)
}

// EqualApprox reports whether a and b have the same length and all entries
// agree within tol.
func EqualApprox(a, b *Vector, tol float64) bool {
	return floats.EqualApprox(a.data, b.data, tol)
}
