package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/gradlin/core/model"
	"github.com/YuminosukeSato/gradlin/pkg/errors"
	"github.com/YuminosukeSato/gradlin/pkg/log"
)

const ex1Path = "../../testdata/ex1data1.txt"

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.alpha)
	assert.Equal(t, 1500, cfg.iterations)
	assert.Equal(t, "0,0", cfg.theta)
	assert.Equal(t, 10000.0, cfg.scale)

	_, err = parseFlags([]string{"-h"}, io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))

	_, err = parseFlags([]string{"extra"}, io.Discard)
	assert.Error(t, err)
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" -1, 2 ,")
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2}, got)

	_, err = parseFloats("1,x")
	var pe *errors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Column)
}

func TestRunEx1(t *testing.T) {
	dir := t.TempDir()
	cfg, err := parseFlags([]string{
		"-data", ex1Path,
		"-plot-fit", filepath.Join(dir, "fit.png"),
		"-plot-cost", filepath.Join(dir, "cost.svg"),
		"-save", filepath.Join(dir, "theta.json"),
	}, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, log.Nop()))

	text := out.String()
	assert.Contains(t, text, "Computed Cost = 32.0727")
	assert.Contains(t, text, "Computed Cost = 54.2424")
	assert.Contains(t, text, " -3.6303\n 1.1664\n")
	assert.Contains(t, text, "we predict 4519.7678")
	assert.Contains(t, text, "we predict 45342.450")
	assert.Contains(t, text, "Iterations: 1500 (converged: false)")
	assert.Contains(t, text, "normal equation")

	for _, name := range []string{"fit.png", "cost.svg"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	w, err := model.LoadWeights(filepath.Join(dir, "theta.json"))
	require.NoError(t, err)
	assert.InDelta(t, -3.6303, w.Intercept(), 1e-4)
	assert.Equal(t, 1500.0, w.Metadata["n_iter"])
}

func TestRunConstantLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,5\n2,5\n3,5\n"), 0o600))

	cfg, err := parseFlags([]string{"-data", path, "-expect=false", "-predict", "4"}, io.Discard)
	require.NoError(t, err)

	logger, _ := log.NewTestLogger(log.LevelDebug)
	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, logger))

	assert.Contains(t, out.String(), "R² n/a")
	assert.True(t, logger.ContainsMessage("training R² unavailable"))
}

func TestUsageExitCode(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 0, usageExitCode(flag.ErrHelp, &buf))
	assert.Empty(t, buf.String())

	_, err := parseFlags([]string{"extra"}, io.Discard)
	require.Error(t, err)
	assert.Equal(t, 2, usageExitCode(err, &buf))
	assert.Contains(t, buf.String(), "unexpected positional arguments")

	buf.Reset()
	_, err = parseFlags([]string{"-alpha", "x"}, io.Discard)
	require.Error(t, err)
	assert.Equal(t, 2, usageExitCode(err, &buf))
	assert.Empty(t, buf.String())
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, err error)
	}{
		{
			name: "missing file",
			args: []string{"-data", filepath.Join(t.TempDir(), "none.txt")},
			check: func(t *testing.T, err error) {
				var ioErr *errors.IOError
				assert.True(t, errors.As(err, &ioErr))
			},
		},
		{
			name: "theta length",
			args: []string{"-data", ex1Path, "-theta", "0,0,0"},
			check: func(t *testing.T, err error) {
				var dimErr *errors.DimensionError
				assert.True(t, errors.As(err, &dimErr))
			},
		},
		{
			name: "non positive alpha",
			args: []string{"-data", ex1Path, "-alpha", "0"},
			check: func(t *testing.T, err error) {
				var hpErr *errors.InvalidHyperparameterError
				assert.True(t, errors.As(err, &hpErr))
			},
		},
		{
			name: "bad prediction row",
			args: []string{"-data", ex1Path, "-predict", "3.5,1"},
			check: func(t *testing.T, err error) {
				var dimErr *errors.DimensionError
				assert.True(t, errors.As(err, &dimErr))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args, io.Discard)
			require.NoError(t, err)
			err = run(cfg, io.Discard, log.Nop())
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
