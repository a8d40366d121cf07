package model

import "github.com/YuminosukeSato/gradlin/core/linalg"

// Fitter は学習可能なモデルのインターフェース
// X は切片列を含まない生の特徴量行列
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X *linalg.Dense, y *linalg.Vector) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X *linalg.Dense) (*linalg.Vector, error)
}

// Scorer は決定係数（R²）を計算できるモデルのインターフェース
type Scorer interface {
	Score(X *linalg.Dense, y *linalg.Vector) (float64, error)
}

// Regressor は回帰モデルのインターフェース
type Regressor interface {
	Fitter
	Predictor
	Scorer
	IsFitted() bool
}
