package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/gradlin/core/linalg"
)

func vec(xs ...float64) *linalg.Vector { return linalg.NewVector(xs) }

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *linalg.Vector
		yPred     *linalg.Vector
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     vec(1.0, 2.0, 3.0, 4.0, 5.0),
			yPred:     vec(1.0, 2.0, 3.0, 4.0, 5.0),
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "simple case",
			yTrue:     vec(1.0, 2.0, 3.0, 4.0),
			yPred:     vec(1.5, 2.5, 2.5, 3.5),
			want:      0.25, // ((0.5)^2 + (0.5)^2 + (-0.5)^2 + (-0.5)^2) / 4
			tolerance: 1e-10,
		},
		{
			name:      "larger errors",
			yTrue:     vec(10.0, 20.0, 30.0),
			yPred:     vec(12.0, 18.0, 33.0),
			want:      17.0 / 3.0,
			tolerance: 1e-10,
		},
		{
			name:    "dimension mismatch",
			yTrue:   vec(1.0, 2.0, 3.0),
			yPred:   vec(1.0, 2.0),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   vec(),
			yPred:   vec(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)

			if (err != nil) != tt.wantErr {
				t.Errorf("MSE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("MSE() = %v, want %v (tolerance: %v)", got, tt.want, tt.tolerance)
				}
			}
		})
	}
}

func TestRMSE(t *testing.T) {
	got, err := RMSE(vec(1, 2, 3, 4), vec(2, 3, 4, 5))
	if err != nil {
		t.Fatalf("RMSE() unexpected error: %v", err)
	}
	if math.Abs(got-1.0) > 1e-10 {
		t.Errorf("RMSE() = %v, want 1", got)
	}

	if _, err := RMSE(vec(1), vec(1, 2)); err == nil {
		t.Error("RMSE() expected dimension error")
	}
}

func TestMAE(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   *linalg.Vector
		yPred   *linalg.Vector
		want    float64
		wantErr bool
	}{
		{"mixed signs", vec(1, 2, 3), vec(2, 1, 5), 4.0 / 3.0, false},
		{"zero error", vec(-1, 0, 1), vec(-1, 0, 1), 0, false},
		{"empty", vec(), vec(), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MAE() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("MAE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   *linalg.Vector
		yPred   *linalg.Vector
		want    float64
		wantErr bool
	}{
		{"perfect", vec(1, 2, 3, 4), vec(1, 2, 3, 4), 1.0, false},
		{"mean prediction", vec(1, 2, 3, 4), vec(2.5, 2.5, 2.5, 2.5), 0.0, false},
		// RSS = 0.25*4 = 1, TSS = 5
		{"partial fit", vec(1, 2, 3, 4), vec(1.5, 2.5, 2.5, 3.5), 0.8, false},
		{"no variance", vec(3, 3, 3), vec(3, 3, 3), 0, true},
		{"mismatch", vec(1, 2), vec(1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2Score(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("R2Score() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("R2Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMetricsDoNotMutateInputs(t *testing.T) {
	yTrue := vec(1, 2, 3)
	yPred := vec(0, 0, 0)

	if _, err := MSE(yTrue, yPred); err != nil {
		t.Fatal(err)
	}
	if _, err := R2Score(yTrue, yPred); err != nil {
		t.Fatal(err)
	}
	if !linalg.EqualApprox(yTrue, vec(1, 2, 3), 0) || !linalg.EqualApprox(yPred, vec(0, 0, 0), 0) {
		t.Error("metrics modified their inputs")
	}
}
