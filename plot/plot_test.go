package plot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/gradlin/core/linalg"
	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

func TestFitChart(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{2, 4, 6}

	p, err := FitChart(xs, ys, linalg.NewVector([]float64{0, 2}), Labels{
		Title: "fit", X: "Population", Y: "Profit",
	})
	require.NoError(t, err)
	assert.Equal(t, "fit", p.Title.Text)
	assert.Equal(t, "Profit", p.Y.Label.Text)

	for _, name := range []string{"fit.png", "fit.svg"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, Save(p, path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestFitChartErrors(t *testing.T) {
	theta := linalg.NewVector([]float64{0, 1})

	_, err := FitChart(nil, nil, theta, Labels{})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	_, err = FitChart([]float64{1, 2}, []float64{1}, theta, Labels{})
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	_, err = FitChart([]float64{1}, []float64{1}, linalg.NewVector([]float64{0, 1, 2}), Labels{})
	assert.True(t, errors.As(err, &dimErr))

	_, err = FitChart([]float64{1}, []float64{1}, nil, Labels{})
	assert.Error(t, err)
}

func TestCostChart(t *testing.T) {
	p, err := CostChart([]float64{10, 5, 2.5, 1.25}, Labels{Title: "J"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cost.png")
	require.NoError(t, Save(p, path))
	_, err = os.Stat(path)
	assert.NoError(t, err)

	_, err = CostChart(nil, Labels{})
	assert.Error(t, err)
	_, err = CostChart([]float64{1, math.Inf(1)}, Labels{})
	assert.Error(t, err)
}

func TestSaveUnknownFormat(t *testing.T) {
	p, err := CostChart([]float64{1, 0.5}, Labels{})
	require.NoError(t, err)

	err = Save(p, filepath.Join(t.TempDir(), "cost.unknown"))
	var ioErr *errors.IOError
	assert.True(t, errors.As(err, &ioErr))
}
