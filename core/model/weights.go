package model

import (
	"encoding/json"

	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

// WeightsVersion is written into every ModelWeights document.
const WeightsVersion = "1.0"

// ModelWeights はモデルの重みを表す構造体（シリアライゼーション用）
type ModelWeights struct {
	// ModelType はモデルの種類（GDRegressor 等）
	ModelType string `json:"model_type"`

	// Version はモデルのバージョン（互換性チェック用）
	Version string `json:"version"`

	// Theta は切片を先頭に含むパラメータベクトル
	Theta []float64 `json:"theta"`

	// Features は特徴量の名前（オプション）
	Features []string `json:"features,omitempty"`

	// Hyperparameters は学習率や反復回数などのハイパーパラメータ
	Hyperparameters map[string]interface{} `json:"hyperparameters"`

	// FinalCost は学習終了時のコスト J(θ)
	FinalCost float64 `json:"final_cost"`

	// Metadata は追加のメタデータ（反復回数、収束したかどうか等）
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// IsFitted はモデルが学習済みかどうか
	IsFitted bool `json:"is_fitted"`
}

// Intercept は Theta の先頭要素を返す
func (mw *ModelWeights) Intercept() float64 {
	if len(mw.Theta) == 0 {
		return 0
	}
	return mw.Theta[0]
}

// Coefficients は切片を除いた係数を返す
func (mw *ModelWeights) Coefficients() []float64 {
	if len(mw.Theta) < 2 {
		return nil
	}
	out := make([]float64, len(mw.Theta)-1)
	copy(out, mw.Theta[1:])
	return out
}

// ToJSON はModelWeightsをJSON形式にシリアライズ
func (mw *ModelWeights) ToJSON() ([]byte, error) {
	return json.MarshalIndent(mw, "", "  ")
}

// FromJSON はJSON形式からModelWeightsをデシリアライズ
func (mw *ModelWeights) FromJSON(data []byte) error {
	if err := json.Unmarshal(data, mw); err != nil {
		return errors.Wrap(err, "decode model weights")
	}
	return nil
}

// Validate はModelWeightsの妥当性を検証
func (mw *ModelWeights) Validate() error {
	if mw.ModelType == "" {
		return errors.NewValidationError("model_type", "is required", mw.ModelType)
	}

	if mw.Version == "" {
		return errors.NewValidationError("version", "is required", mw.Version)
	}

	if !mw.IsFitted && len(mw.Theta) > 0 {
		return errors.NewValidationError("theta", "unfitted model should not have parameters", len(mw.Theta))
	}

	if mw.IsFitted && len(mw.Theta) < 2 {
		return errors.NewValidationError("theta", "fitted model needs an intercept and at least one coefficient", len(mw.Theta))
	}

	if len(mw.Features) > 0 && len(mw.Features) != len(mw.Theta)-1 {
		return errors.NewDimensionError("ModelWeights.Validate", len(mw.Theta)-1, len(mw.Features), 1)
	}

	return nil
}

// Clone はModelWeightsのディープコピーを作成
func (mw *ModelWeights) Clone() *ModelWeights {
	clone := &ModelWeights{
		ModelType:       mw.ModelType,
		Version:         mw.Version,
		FinalCost:       mw.FinalCost,
		IsFitted:        mw.IsFitted,
		Theta:           make([]float64, len(mw.Theta)),
		Features:        make([]string, len(mw.Features)),
		Hyperparameters: make(map[string]interface{}, len(mw.Hyperparameters)),
		Metadata:        make(map[string]interface{}, len(mw.Metadata)),
	}

	copy(clone.Theta, mw.Theta)
	copy(clone.Features, mw.Features)

	for k, v := range mw.Hyperparameters {
		clone.Hyperparameters[k] = v
	}

	for k, v := range mw.Metadata {
		clone.Metadata[k] = v
	}

	return clone
}
