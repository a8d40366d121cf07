// Package gradlin fits linear models with full-batch gradient descent.
//
// It reproduces the single-variable exercise of the classic machine learning
// course: load a table of (population, profit) rows, build the design matrix
// with a bias column, evaluate the squared-error cost and refine theta with a
// fixed number of gradient descent updates.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gradlin/core/linalg"
//	    "github.com/YuminosukeSato/gradlin/data"
//	    "github.com/YuminosukeSato/gradlin/linear"
//	)
//
//	func main() {
//	    ds, err := data.Load("testdata/ex1data1.txt")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    X, y, err := data.BuildDesign(ds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    res, err := linear.GradientDescent(X, y, linalg.Zeros(2), 0.01, 1500)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    profit, _ := linear.Predict(res.Theta, []float64{3.5})
//	    fmt.Println(res.Theta, profit*10000)
//	}
//
// # Packages
//
//   - core/linalg: dense matrix and vector with shape-checked operations
//   - core/parallel: row-chunked fan-out for read-only work
//   - core/model: estimator state and weight persistence
//   - data: dataset loading and design matrix construction
//   - linear: cost function, gradient descent, prediction, normal equation
//     and the GDRegressor estimator
//   - metrics: MSE, RMSE, MAE and R²
//   - plot: fitted-line and cost-history charts
//   - pkg/errors, pkg/log: error types and structured logging
//
// The cmd/ex1 command prints the exercise's reference figures.
package gradlin
