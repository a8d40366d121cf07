package linear

import (
	"context"
	"fmt"
	"math"

	"github.com/YuminosukeSato/gradlin/core/linalg"
	"github.com/YuminosukeSato/gradlin/pkg/errors"
	"github.com/YuminosukeSato/gradlin/pkg/log"
)

// Result は最急降下法の結果
type Result struct {
	// Theta は学習されたパラメータ。呼び出し側の theta0 とは別のベクトル
	Theta *linalg.Vector
	// Iterations は実際に行った更新回数
	Iterations int
	// Cost は Theta におけるコスト
	Cost float64
	// History は各更新後のコスト（WithHistory 指定時のみ）
	History []float64
	// Converged は許容誤差による停止が起きたかどうか
	Converged bool
}

// DescentOption は GradientDescent の停止条件やログ出力を設定する
type DescentOption func(*descentConfig)

type descentConfig struct {
	tol      float64
	history  bool
	logger   log.Logger
	logEvery int
}

// WithTolerance は連続する反復間のコスト変化量 |J_k - J_{k+1}| が tol 未満に
// なった時点で停止させる。最大反復回数とどちらか先に満たした方で終了する。
// 0（デフォルト）は固定反復モード
func WithTolerance(tol float64) DescentOption {
	return func(c *descentConfig) {
		c.tol = tol
	}
}

// WithHistory は各更新後のコストを Result.History に記録する
func WithHistory() DescentOption {
	return func(c *descentConfig) {
		c.history = true
	}
}

// WithDescentLogger sets the logger used for progress records.
func WithDescentLogger(logger log.Logger) DescentOption {
	return func(c *descentConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLogEvery emits a debug record every n iterations. Zero disables it.
func WithLogEvery(n int) DescentOption {
	return func(c *descentConfig) {
		c.logEvery = n
	}
}

// GradientDescent はバッチ最急降下法で θ を iterations 回更新する
//
// 各反復は
//
//	pred  = X·θ
//	grad  = (1/m) * Xᵀ·(pred - y)
//	θ     = θ - α * grad
//
// 勾配はすべて更新前の θ から計算し、θ は毎回新しいベクトルに置き換える。
// theta0 は変更しない。alpha <= 0（NaN, Inf を含む）や iterations < 0 は
// InvalidHyperparameterError、次元の不一致は DimensionError として演算前に返す
func GradientDescent(X *linalg.Dense, y, theta0 *linalg.Vector, alpha float64, iterations int, opts ...DescentOption) (*Result, error) {
	const op = "linear.GradientDescent"

	cfg := &descentConfig{logger: log.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := checkProblem(op, X, y, theta0); err != nil {
		return nil, err
	}
	if err := validateHyperparameters(alpha, iterations, cfg.tol); err != nil {
		return nil, err
	}

	logger := cfg.logger.With(
		log.OperationKey, log.OperationFit,
		log.ComponentKey, "GradientDescent",
	)
	logger.Debug("gradient descent started",
		log.SamplesKey, y.Len(),
		log.FeaturesKey, theta0.Len(),
		log.LearningRateKey, alpha,
		log.IterationsKey, iterations,
		log.ToleranceKey, cfg.tol,
	)

	m := y.Len()
	scalar := 1.0 / float64(m)
	// X は不変なので転置は一度だけ計算する
	XT := X.Transpose()

	trackCost := cfg.history || cfg.tol > 0 || cfg.logEvery > 0
	res := &Result{}
	if cfg.history {
		res.History = make([]float64, 0, iterations)
	}

	theta := theta0.Clone()
	prevCost := math.NaN()
	if cfg.tol > 0 {
		c, err := ComputeCost(X, y, theta)
		if err != nil {
			return nil, err
		}
		prevCost = c
	}

	for i := 0; i < iterations; i++ {
		pred, err := X.MulVec(theta)
		if err != nil {
			return nil, err
		}
		residual, err := linalg.Sub(pred, y)
		if err != nil {
			return nil, err
		}
		g, err := XT.MulVec(residual)
		if err != nil {
			return nil, err
		}
		grad := linalg.Scale(scalar, g)

		theta, err = linalg.AddScaled(theta, -alpha, grad)
		if err != nil {
			return nil, err
		}
		res.Iterations = i + 1

		if !trackCost {
			continue
		}
		cost, err := ComputeCost(X, y, theta)
		if err != nil {
			return nil, err
		}
		if cfg.history {
			res.History = append(res.History, cost)
		}
		if cfg.logEvery > 0 && res.Iterations%cfg.logEvery == 0 && logger.Enabled(context.Background(), log.LevelDebug) {
			logger.Debug("gradient descent progress",
				log.IterationKey, res.Iterations,
				log.LossKey, cost,
				log.ThetaKey, theta.RawVector(),
			)
		}
		if cfg.tol > 0 {
			if math.Abs(prevCost-cost) < cfg.tol {
				res.Converged = true
				break
			}
			prevCost = cost
		}
	}

	res.Theta = theta
	cost, err := ComputeCost(X, y, theta)
	if err != nil {
		return nil, err
	}
	res.Cost = cost

	if cfg.tol > 0 && !res.Converged && iterations > 0 {
		errors.Warn(errors.NewConvergenceWarning("GradientDescent", res.Iterations,
			fmt.Sprintf("cost change did not fall below tolerance %g", cfg.tol)))
	}

	logger.Info("gradient descent finished",
		log.IterationKey, res.Iterations,
		log.LossKey, res.Cost,
		log.ConvergedKey, res.Converged,
		log.ThetaKey, theta.RawVector(),
	)
	return res, nil
}

func validateHyperparameters(alpha float64, iterations int, tol float64) error {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return errors.NewInvalidHyperparameterError("alpha", "must be a finite number", alpha)
	}
	if alpha <= 0 {
		return errors.NewInvalidHyperparameterError("alpha", "must be greater than 0", alpha)
	}
	if iterations < 0 {
		return errors.NewInvalidHyperparameterError("iterations", "must be non-negative", iterations)
	}
	if math.IsNaN(tol) || tol < 0 {
		return errors.NewInvalidHyperparameterError("tolerance", "must be non-negative", tol)
	}
	return nil
}
