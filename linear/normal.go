package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gradlin/core/linalg"
	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

// NormalEquation は正規方程式 θ = (XᵀX)⁻¹Xᵀy で最小二乗解を求める
// X は切片列を含む設計行列。最急降下法の結果と比較するための参照解として使う
func NormalEquation(X *linalg.Dense, y *linalg.Vector) (*linalg.Vector, error) {
	const op = "linear.NormalEquation"
	if X == nil || y == nil {
		return nil, errors.NewValueError(op, "X and y must not be nil")
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if y.Len() != r {
		return nil, errors.NewDimensionError(op, r, y.Len(), 0)
	}

	// (X^T * X)^(-1) * X^T * y
	var XTX mat.Dense
	XTX.Mul(X.T(), X)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return nil, errors.NewModelError(op, "singular matrix", errors.ErrSingularMatrix)
	}

	var XTy mat.VecDense
	XTy.MulVec(X.T(), y)

	var theta mat.VecDense
	theta.MulVec(&XTXInv, &XTy)

	return linalg.NewVector(theta.RawVector().Data), nil
}
