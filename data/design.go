package data

import (
	"github.com/YuminosukeSato/gradlin/core/linalg"
	"github.com/YuminosukeSato/gradlin/core/parallel"
	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// DesignOption selects which dataset columns feed the design matrix.
type DesignOption func(*designConfig)

type designConfig struct {
	label    int
	features []int
}

// WithLabelColumn picks the label column. The default is the last column.
func WithLabelColumn(j int) DesignOption {
	return func(c *designConfig) {
		c.label = j
	}
}

// WithFeatureColumns picks the feature columns in order. The default is every
// column except the label.
func WithFeatureColumns(js ...int) DesignOption {
	return func(c *designConfig) {
		c.features = make([]int, len(js))
		copy(c.features, js)
	}
}

// BuildDesign derives the design matrix X, with a leading column of ones, and
// the label vector y from ds.
func BuildDesign(ds *Dataset, opts ...DesignOption) (*linalg.Dense, *linalg.Vector, error) {
	if ds == nil || ds.Rows() == 0 {
		return nil, nil, errors.WithStack(errors.ErrEmptyData)
	}
	if ds.Cols() < 2 {
		return nil, nil, errors.NewValidationError("columns", "need at least one feature and one label column", ds.Cols())
	}

	cfg := &designConfig{label: ds.Cols() - 1}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.label < 0 || cfg.label >= ds.Cols() {
		return nil, nil, errors.NewValidationError("label_column", "out of range", cfg.label)
	}
	if cfg.features == nil {
		for j := 0; j < ds.Cols(); j++ {
			if j != cfg.label {
				cfg.features = append(cfg.features, j)
			}
		}
	}
	if len(cfg.features) == 0 {
		return nil, nil, errors.NewValidationError("feature_columns", "no feature columns selected", cfg.features)
	}
	for _, j := range cfg.features {
		if j < 0 || j >= ds.Cols() {
			return nil, nil, errors.NewValidationError("feature_columns", "out of range", j)
		}
	}

	m, n := ds.Rows(), len(cfg.features)+1
	xData := make([]float64, m*n)
	err := parallel.ParallelizeWithThreshold(m, parallelThreshold, func(start, end int) error {
		for i := start; i < end; i++ {
			row := xData[i*n : (i+1)*n]
			row[0] = 1.0 // 切片項
			for k, j := range cfg.features {
				row[k+1] = ds.At(i, j)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	X, err := linalg.NewDense(m, n, xData)
	if err != nil {
		return nil, nil, err
	}
	return X, linalg.NewVector(ds.Column(cfg.label)), nil
}

// AddBias returns [1, x...] for every row of the raw feature matrix X.
func AddBias(X *linalg.Dense) (*linalg.Dense, error) {
	m, c := X.Dims()
	n := c + 1
	out := make([]float64, m*n)
	err := parallel.ParallelizeWithThreshold(m, parallelThreshold, func(start, end int) error {
		for i := start; i < end; i++ {
			out[i*n] = 1.0
			for j := 0; j < c; j++ {
				out[i*n+j+1] = X.At(i, j)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return linalg.NewDense(m, n, out)
}
