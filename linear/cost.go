package linear

import (
	"github.com/YuminosukeSato/gradlin/core/linalg"
	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

// ComputeCost は二乗誤差コスト J(θ) = (1/(2m)) * Σ(X·θ - y)² を計算する
//
// 次元の検査は演算の前に行う:
//   - len(theta) != cols(X) のとき Axis 1 の DimensionError
//   - rows(X) != len(y) のとき Axis 0 の DimensionError
//   - m == 0 のとき ErrEmptyData
func ComputeCost(X *linalg.Dense, y, theta *linalg.Vector) (float64, error) {
	if err := checkProblem("linear.ComputeCost", X, y, theta); err != nil {
		return 0, err
	}
	m := y.Len()

	prod, err := X.MulVec(theta)
	if err != nil {
		return 0, err
	}
	residual, err := linalg.Sub(prod, y)
	if err != nil {
		return 0, err
	}

	scalar := 1.0 / (2.0 * float64(m))
	return scalar * linalg.Sum(linalg.Pow(residual, 2)), nil
}

// checkProblem verifies rows(X) == len(y) == m > 0 and cols(X) == len(theta).
func checkProblem(op string, X *linalg.Dense, y, theta *linalg.Vector) error {
	if X == nil || y == nil || theta == nil {
		return errors.NewValueError(op, "X, y and theta must not be nil")
	}
	r, c := X.Dims()
	if r == 0 || y.Len() == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if theta.Len() != c {
		return errors.NewDimensionError(op, c, theta.Len(), 1)
	}
	if y.Len() != r {
		return errors.NewDimensionError(op, r, y.Len(), 0)
	}
	return nil
}
