package linear

import (
	"github.com/YuminosukeSato/gradlin/core/linalg"
	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

// Predict は θ · [1, features...] を返す
func Predict(theta *linalg.Vector, features []float64) (float64, error) {
	if theta == nil {
		return 0, errors.NewValueError("linear.Predict", "theta must not be nil")
	}
	if len(features)+1 != theta.Len() {
		return 0, errors.NewDimensionError("linear.Predict", theta.Len()-1, len(features), 1)
	}

	x := make([]float64, 0, len(features)+1)
	x = append(x, 1.0) // 切片項
	x = append(x, features...)
	return linalg.Dot(theta, linalg.NewVector(x))
}

// PredictMatrix は切片列を含む設計行列 X に対して X·θ を返す
func PredictMatrix(X *linalg.Dense, theta *linalg.Vector) (*linalg.Vector, error) {
	if X == nil || theta == nil {
		return nil, errors.NewValueError("linear.PredictMatrix", "X and theta must not be nil")
	}
	return X.MulVec(theta)
}
