package linear

import "github.com/YuminosukeSato/gradlin/pkg/log"

// Option is a function that configures GDRegressor
type Option func(*GDRegressor)

// WithLearningRate sets the gradient descent step size alpha
func WithLearningRate(alpha float64) Option {
	return func(r *GDRegressor) {
		r.alpha = alpha
	}
}

// WithIterations sets the maximum number of full-batch updates
func WithIterations(n int) Option {
	return func(r *GDRegressor) {
		r.iterations = n
	}
}

// WithTol stops early once the cost changes by less than tol between updates
func WithTol(tol float64) Option {
	return func(r *GDRegressor) {
		r.tol = tol
	}
}

// WithInitialTheta sets theta0, intercept first. The default is zeros.
func WithInitialTheta(theta ...float64) Option {
	return func(r *GDRegressor) {
		r.theta0 = append([]float64(nil), theta...)
	}
}

// WithFeatureNames records column names for the exported weights
func WithFeatureNames(names ...string) Option {
	return func(r *GDRegressor) {
		r.featureNames = append([]string(nil), names...)
	}
}

// WithLogger sets the logger for fit progress
func WithLogger(logger log.Logger) Option {
	return func(r *GDRegressor) {
		if logger != nil {
			r.logger = logger
		}
	}
}
