package model

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

// SaveWeights は検証済みの重みをJSONファイルに書き出す
//
// 使用例:
//
//	reg := linear.NewGDRegressor()
//	// ... モデルの学習 ...
//	w, _ := reg.Weights()
//	err := model.SaveWeights("theta.json", w)
func SaveWeights(filename string, w *ModelWeights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	data, err := w.ToJSON()
	if err != nil {
		return errors.Wrap(err, "encode model weights")
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.NewIOError("model.SaveWeights", filename, err)
	}
	return nil
}

// LoadWeights はJSONファイルから重みを読み込み検証する
func LoadWeights(filename string) (*ModelWeights, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.NewIOError("model.LoadWeights", filename, err)
	}
	w := &ModelWeights{}
	if err := w.FromJSON(data); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// SaveModel はモデルをgob形式でファイルに保存する
//
// パラメータ:
//   - model: 保存するモデル（BaseEstimatorを埋め込んだ構造体）
//   - filename: 保存先のファイルパス
func SaveModel(model interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.NewIOError("model.SaveModel", filename, err)
	}
	defer file.Close()

	return SaveModelToWriter(model, file)
}

// LoadModel はgob形式のファイルからモデルを読み込む
//
// パラメータ:
//   - model: 読み込み先のモデル（BaseEstimatorを埋め込んだ構造体のポインタ）
//   - filename: 読み込み元のファイルパス
func LoadModel(model interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.NewIOError("model.LoadModel", filename, err)
	}
	defer file.Close()

	return LoadModelFromReader(model, file)
}

// SaveModelToWriter はモデルをio.Writerに保存する
func SaveModelToWriter(model interface{}, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(model); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// LoadModelFromReader はio.Readerからモデルを読み込む
func LoadModelFromReader(model interface{}, r io.Reader) error {
	if err := gob.NewDecoder(r).Decode(model); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	return nil
}
