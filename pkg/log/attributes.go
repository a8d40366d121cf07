// Package log defines standard attribute keys for model fitting operations.
//
// Using the same keys everywhere keeps the JSON output of the loader, the
// optimizer and the CLI filterable with a single query. Keys follow a
// hierarchical "<area>.<name>" convention.
package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator or routine, e.g. "GradientDescent".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed. See the Operation* values.
	OperationKey = "ml.operation"

	// ComponentKey identifies the emitting package, e.g. "linear", "data".
	ComponentKey = "ml.component"

	// PhaseKey indicates the lifecycle phase, e.g. "training", "inference".
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	// SamplesKey is the number of examples (m).
	SamplesKey = "data.samples"

	// FeaturesKey is the number of design matrix columns, bias included.
	FeaturesKey = "data.features"

	// SourceKey is the path a dataset was read from.
	SourceKey = "data.source"
)

// Training progress and metrics.
const (
	DurationMsKey = "perf.duration_ms"

	// LossKey records the cost J(theta).
	LossKey = "metrics.loss"

	R2ScoreKey = "metrics.r2_score"

	// IterationKey records the current gradient descent iteration.
	IterationKey = "training.iteration"

	// ConvergedKey reports whether the tolerance stopping rule fired.
	ConvergedKey = "training.converged"

	// ThetaKey records a parameter vector.
	ThetaKey = "model.theta"
)

// Hyperparameters.
const (
	LearningRateKey = "hyperparams.learning_rate"
	IterationsKey   = "hyperparams.iterations"
	ToleranceKey    = "hyperparams.tolerance"
)

// Error context.
const (
	ErrorCodeKey = "error.code"
	ErrorTypeKey = "error.type"
)

// Standard attribute values.
const (
	OperationLoad    = "load"
	OperationDesign  = "design"
	OperationCost    = "cost"
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"

	PhaseTraining  = "training"
	PhaseInference = "inference"

	ErrorDimensionMismatch     = "DIMENSION_MISMATCH"
	ErrorInvalidHyperparameter = "INVALID_HYPERPARAMETER"
	ErrorEmptyData             = "EMPTY_DATA"
	ErrorParse                 = "PARSE_ERROR"
	ErrorIO                    = "IO_ERROR"
)
