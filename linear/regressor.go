package linear

import (
	"github.com/YuminosukeSato/gradlin/core/linalg"
	"github.com/YuminosukeSato/gradlin/core/model"
	"github.com/YuminosukeSato/gradlin/data"
	"github.com/YuminosukeSato/gradlin/metrics"
	"github.com/YuminosukeSato/gradlin/pkg/errors"
	"github.com/YuminosukeSato/gradlin/pkg/log"
)

const (
	// DefaultLearningRate は ex1 の学習率
	DefaultLearningRate = 0.01
	// DefaultIterations は ex1 の反復回数
	DefaultIterations = 1500

	modelName = "GDRegressor"
)

var _ model.Regressor = (*GDRegressor)(nil)

// GDRegressor はバッチ最急降下法で学習する線形回帰モデル
type GDRegressor struct {
	model.BaseEstimator

	alpha        float64
	iterations   int
	tol          float64
	theta0       []float64
	featureNames []string
	logger       log.Logger

	theta     *linalg.Vector
	history   []float64
	cost      float64
	nIter     int
	converged bool
	nFeatures int
}

// NewGDRegressor は新しい GDRegressor を作成する
func NewGDRegressor(opts ...Option) *GDRegressor {
	r := &GDRegressor{
		alpha:      DefaultLearningRate,
		iterations: DefaultIterations,
		logger:     log.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fit はモデルを訓練データで学習させる
// X は切片列を含まない特徴量行列で、切片列はここで追加する
func (r *GDRegressor) Fit(X *linalg.Dense, y *linalg.Vector) error {
	if X == nil || y == nil {
		return errors.NewValueError("GDRegressor.Fit", "X and y must not be nil")
	}
	design, err := data.AddBias(X)
	if err != nil {
		return err
	}
	_, c := design.Dims()

	theta0 := linalg.Zeros(c)
	if r.theta0 != nil {
		theta0 = linalg.NewVector(r.theta0)
	}

	res, err := GradientDescent(design, y, theta0, r.alpha, r.iterations,
		WithTolerance(r.tol),
		WithHistory(),
		WithDescentLogger(r.logger.With(log.ModelNameKey, modelName)),
	)
	if err != nil {
		return err
	}

	r.theta = res.Theta
	r.history = res.History
	r.cost = res.Cost
	r.nIter = res.Iterations
	r.converged = res.Converged
	r.nFeatures = c - 1

	// モデルを学習済み状態に設定
	r.SetFitted()
	return nil
}

// Predict は入力データに対する予測を行う
func (r *GDRegressor) Predict(X *linalg.Dense) (*linalg.Vector, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError(modelName, "Predict")
	}
	if X == nil {
		return nil, errors.NewValueError("GDRegressor.Predict", "X must not be nil")
	}
	if _, c := X.Dims(); c != r.nFeatures {
		return nil, errors.NewDimensionError("GDRegressor.Predict", r.nFeatures, c, 1)
	}
	design, err := data.AddBias(X)
	if err != nil {
		return nil, err
	}
	return PredictMatrix(design, r.theta)
}

// PredictOne は1サンプル分の特徴量に対する予測値を返す
func (r *GDRegressor) PredictOne(features ...float64) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError(modelName, "PredictOne")
	}
	return Predict(r.theta, features)
}

// Score はモデルの決定係数（R²）を計算する
func (r *GDRegressor) Score(X *linalg.Dense, y *linalg.Vector) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError(modelName, "Score")
	}
	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, yPred)
}

// Theta は学習されたパラメータ（切片が先頭）のコピーを返す
func (r *GDRegressor) Theta() *linalg.Vector {
	if r.theta == nil {
		return nil
	}
	return r.theta.Clone()
}

// Cost は学習終了時のコストを返す
func (r *GDRegressor) Cost() float64 { return r.cost }

// CostHistory は各更新後のコストのコピーを返す
func (r *GDRegressor) CostHistory() []float64 {
	out := make([]float64, len(r.history))
	copy(out, r.history)
	return out
}

// NIter は実際に行った更新回数を返す
func (r *GDRegressor) NIter() int { return r.nIter }

// Converged は許容誤差で停止したかどうかを返す
func (r *GDRegressor) Converged() bool { return r.converged }

// Weights は学習済みパラメータをシリアライズ用の形式で返す
func (r *GDRegressor) Weights() (*model.ModelWeights, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError(modelName, "Weights")
	}
	return &model.ModelWeights{
		ModelType: modelName,
		Version:   model.WeightsVersion,
		Theta:     r.theta.RawVector(),
		Features:  append([]string(nil), r.featureNames...),
		Hyperparameters: map[string]interface{}{
			"alpha":      r.alpha,
			"iterations": r.iterations,
			"tol":        r.tol,
		},
		FinalCost: r.cost,
		Metadata: map[string]interface{}{
			"n_iter":    r.nIter,
			"converged": r.converged,
		},
		IsFitted: true,
	}, nil
}

// LoadWeights は保存された重みでモデルを学習済み状態にする
func (r *GDRegressor) LoadWeights(w *model.ModelWeights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.ModelType != modelName {
		return errors.NewModelError("GDRegressor.LoadWeights", "unexpected model type "+w.ModelType, nil)
	}
	if !w.IsFitted {
		return errors.NewModelError("GDRegressor.LoadWeights", "weights are not fitted", nil)
	}

	r.theta = linalg.NewVector(w.Theta)
	r.nFeatures = len(w.Theta) - 1
	r.cost = w.FinalCost
	r.featureNames = append([]string(nil), w.Features...)
	r.history = nil
	r.SetFitted()
	return nil
}
