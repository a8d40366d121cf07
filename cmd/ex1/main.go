// Command ex1 fits profit against city population with batch gradient descent
// and reports the same figures as the classic exercise: the cost at two
// reference parameter vectors, the learned theta and two scaled predictions.
//
// Usage:
//
//	ex1 [-data testdata/ex1data1.txt] [-alpha 0.01] [-iterations 1500]
//	    [-tol 0] [-theta 0,0] [-predict "3.5;7"] [-scale 10000]
//	    [-plot-fit fit.png] [-plot-cost cost.png] [-save theta.json]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/gradlin/core/linalg"
	"github.com/YuminosukeSato/gradlin/core/model"
	"github.com/YuminosukeSato/gradlin/data"
	"github.com/YuminosukeSato/gradlin/linear"
	"github.com/YuminosukeSato/gradlin/metrics"
	"github.com/YuminosukeSato/gradlin/pkg/errors"
	"github.com/YuminosukeSato/gradlin/pkg/log"
	"github.com/YuminosukeSato/gradlin/plot"
)

type config struct {
	dataPath   string
	alpha      float64
	iterations int
	tol        float64
	theta      string
	checkTheta string
	predict    string
	scale      float64
	expect     bool
	logLevel   string
	logEvery   int
	plotFit    string
	plotCost   string
	save       string
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("ex1", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.dataPath, "data", "testdata/ex1data1.txt", "headerless comma separated dataset, label in the last column")
	fs.Float64Var(&cfg.alpha, "alpha", linear.DefaultLearningRate, "learning rate")
	fs.IntVar(&cfg.iterations, "iterations", linear.DefaultIterations, "maximum number of gradient descent updates")
	fs.Float64Var(&cfg.tol, "tol", 0, "stop when the cost changes by less than this between updates (0 = fixed iterations)")
	fs.StringVar(&cfg.theta, "theta", "0,0", "initial theta, intercept first")
	fs.StringVar(&cfg.checkTheta, "check-theta", "-1,2", "second theta at which to report the cost")
	fs.StringVar(&cfg.predict, "predict", "3.5;7", "feature rows to predict, rows separated by ';'")
	fs.Float64Var(&cfg.scale, "scale", 10000, "multiplier applied to printed predictions")
	fs.BoolVar(&cfg.expect, "expect", true, "print the reference values of the ex1 dataset")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.IntVar(&cfg.logEvery, "log-every", 0, "log the cost every n iterations at debug level")
	fs.StringVar(&cfg.plotFit, "plot-fit", "", "write a scatter plot with the fitted line to this file")
	fs.StringVar(&cfg.plotCost, "plot-cost", "", "write the cost history chart to this file")
	fs.StringVar(&cfg.save, "save", "", "write the learned weights as JSON to this file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.NewValidationError("args", "unexpected positional arguments", fs.Args())
	}
	return cfg, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.NewParseError(1, i+1, p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func run(cfg *config, stdout io.Writer, logger log.Logger) error {
	ds, err := data.Load(cfg.dataPath, data.WithLoadLogger(logger))
	if err != nil {
		return err
	}
	X, y, err := data.BuildDesign(ds)
	if err != nil {
		return err
	}

	theta0Vals, err := parseFloats(cfg.theta)
	if err != nil {
		return errors.Wrap(err, "-theta")
	}
	theta0 := linalg.NewVector(theta0Vals)
	checkVals, err := parseFloats(cfg.checkTheta)
	if err != nil {
		return errors.Wrap(err, "-check-theta")
	}

	cost, err := linear.ComputeCost(X, y, theta0)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "With theta = %v\nComputed Cost = %.6f\n", theta0Vals, cost)
	if cfg.expect {
		fmt.Fprintln(stdout, "Expected cost value (approx) 32.07")
	}

	cost, err = linear.ComputeCost(X, y, linalg.NewVector(checkVals))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "With theta = %v\nComputed Cost = %.6f\n", checkVals, cost)
	if cfg.expect {
		fmt.Fprintln(stdout, "Expected cost value (approx) 54.24")
	}

	res, err := linear.GradientDescent(X, y, theta0, cfg.alpha, cfg.iterations,
		linear.WithTolerance(cfg.tol),
		linear.WithHistory(),
		linear.WithDescentLogger(logger),
		linear.WithLogEvery(cfg.logEvery),
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Theta found by gradient descent:")
	for _, v := range res.Theta.RawVector() {
		fmt.Fprintf(stdout, " %.4f\n", v)
	}
	if cfg.expect {
		fmt.Fprintln(stdout, "Expected values (approx)")
		fmt.Fprintln(stdout, " -3.6303\n 1.1664")
	}
	fmt.Fprintf(stdout, "Iterations: %d (converged: %t), final cost %.6f\n", res.Iterations, res.Converged, res.Cost)

	if cfg.predict != "" {
		expected := []string{"4519.767868", "45342.450129"}
		for i, row := range strings.Split(cfg.predict, ";") {
			features, err := parseFloats(row)
			if err != nil {
				return errors.Wrap(err, "-predict")
			}
			p, err := linear.Predict(res.Theta, features)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "For features %v, we predict %.6f", features, p*cfg.scale)
			if cfg.expect && i < len(expected) {
				fmt.Fprintf(stdout, " (expected %s)", expected[i])
			}
			fmt.Fprintln(stdout)
		}
	}

	yPred, err := linear.PredictMatrix(X, res.Theta)
	if err != nil {
		return err
	}
	mse, err := metrics.MSE(y, yPred)
	if err != nil {
		return err
	}
	if r2, err := metrics.R2Score(y, yPred); err != nil {
		// ラベルが定数だと R² は定義できない
		logger.Warn("training R² unavailable", log.ErrAttrKey, err)
		fmt.Fprintf(stdout, "Training MSE %.6f, R² n/a\n", mse)
	} else {
		fmt.Fprintf(stdout, "Training MSE %.6f, R² %.6f\n", mse, r2)
	}

	exact, err := linear.NormalEquation(X, y)
	if err != nil {
		// 参照解が求まらなくても最急降下法の結果は有効
		logger.Warn("normal equation unavailable", log.ErrAttrKey, err)
	} else {
		fmt.Fprintf(stdout, "Theta found by the normal equation: %v\n", exact.RawVector())
	}

	if cfg.plotFit != "" {
		if _, c := X.Dims(); c != 2 {
			return errors.NewValidationError("plot-fit", "needs exactly one feature column", c-1)
		}
		p, err := plot.FitChart(X.Col(1), y.RawVector(), res.Theta, plot.Labels{
			Title: "Linear regression fit",
			X:     "Population of City in 10,000s",
			Y:     "Profit in $10,000s",
		})
		if err != nil {
			return err
		}
		if err := plot.Save(p, cfg.plotFit); err != nil {
			return err
		}
	}
	if cfg.plotCost != "" && len(res.History) > 0 {
		p, err := plot.CostChart(res.History, plot.Labels{
			Title: "Convergence of gradient descent",
			X:     "Iteration",
			Y:     "Cost J",
		})
		if err != nil {
			return err
		}
		if err := plot.Save(p, cfg.plotCost); err != nil {
			return err
		}
	}
	if cfg.save != "" {
		w := &model.ModelWeights{
			ModelType: "GradientDescent",
			Version:   model.WeightsVersion,
			Theta:     res.Theta.RawVector(),
			Hyperparameters: map[string]interface{}{
				"alpha":      cfg.alpha,
				"iterations": cfg.iterations,
				"tol":        cfg.tol,
			},
			FinalCost: res.Cost,
			Metadata: map[string]interface{}{
				"n_iter":    res.Iterations,
				"converged": res.Converged,
				"source":    cfg.dataPath,
			},
			IsFitted: true,
		}
		if err := model.SaveWeights(cfg.save, w); err != nil {
			return err
		}
	}
	return nil
}

// usageExitCode は parseFlags のエラーを終了コードに変換する。
// flag 自身のエラーは FlagSet が出力済みなので、それ以外だけ w に書く。
func usageExitCode(err error, w io.Writer) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	var ve *errors.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintln(w, err)
	}
	return 2
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(usageExitCode(err, os.Stderr))
	}
	if err := log.SetupLogger(cfg.logLevel, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.RouteWarningsTo(os.Stderr)
	logger := log.Default().With(log.ComponentKey, "ex1")

	err = errors.SafeExecute("ex1", func() error {
		return run(cfg, os.Stdout, logger)
	})
	if err != nil {
		slog.Error("ex1 failed", log.ErrAttr(err))
		os.Exit(1)
	}
}
