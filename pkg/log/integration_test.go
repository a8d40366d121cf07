package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationFit)
	testLogger.Warn("warning message")
	testLogger.Error("error message", fmt.Errorf("boom"), ErrorCodeKey, ErrorDimensionMismatch)

	require.NotEmpty(t, buffer.String())
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		assert.True(t, testLogger.ContainsMessage(msg), msg)
	}
	assert.True(t, testLogger.ContainsField("key1", "value1"))
	assert.True(t, testLogger.ContainsField("number", 42.0))
	assert.True(t, testLogger.ContainsField(ErrAttrKey, "boom"))
	assert.True(t, testLogger.ContainsField(ErrorCodeKey, ErrorDimensionMismatch))
}

func TestTestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ModelNameKey, "GradientDescent",
		ComponentKey, "linear",
	)
	contextLogger.Info("iteration", IterationKey, 100, LossKey, 5.1)

	entries := testLogger.EntriesWithMessage("iteration")
	require.Len(t, entries, 1)
	assert.Equal(t, "GradientDescent", entries[0][ModelNameKey])
	assert.Equal(t, "linear", entries[0][ComponentKey])
	assert.Equal(t, 100.0, entries[0][IterationKey])
}

func TestTestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	assert.True(t, testLogger.Enabled(ctx, LevelInfo))
	assert.True(t, testLogger.Enabled(ctx, LevelError))
	assert.False(t, testLogger.Enabled(ctx, LevelDebug))

	testLogger.Debug("hidden")
	testLogger.Info("shown")
	assert.False(t, testLogger.ContainsMessage("hidden"))
	assert.True(t, testLogger.ContainsMessage("shown"))

	testLogger.Clear()
	assert.False(t, testLogger.ContainsMessage("shown"))
}

func TestConcurrentLogging(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				testLogger.Info("msg", "worker", worker, "n", j)
			}
		}(i)
	}
	wg.Wait()

	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 80)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				var ve *errors.ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "log_level", ve.ParamName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlogLoggerWithErrFmtHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(NewHandler(&buf, LevelInfo))).With(ComponentKey, "data")

	logger.Debug("dropped")
	logger.Error("load failed", errors.NewDimensionError("Load", 2, 3, 1), SourceKey, "ex1data1.txt")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "ERROR", entry["severity"])
	assert.Equal(t, "load failed", entry["message"])
	assert.Equal(t, "data", entry[ComponentKey])
	assert.Equal(t, "ex1data1.txt", entry[SourceKey])
	assert.NotEmpty(t, entry[StacktraceAttrKey])
	assert.False(t, logger.Enabled(context.Background(), LevelDebug))
}

func TestNop(t *testing.T) {
	l := Nop().With("k", "v")
	l.Info("nothing")
	assert.False(t, l.Enabled(context.Background(), LevelError))
}

func TestRouteWarningsTo(t *testing.T) {
	var buf bytes.Buffer
	RouteWarningsTo(&buf)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewConvergenceWarning("GradientDescent", 10, "cost delta 0.5 above tolerance"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "ConvergenceWarning", entry["type"])
	assert.Equal(t, "warnings", entry[ComponentKey])
	assert.Equal(t, 10.0, entry["iterations"])
}

func BenchmarkTestLogger(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testLogger.Info("benchmark", IterationKey, i, LossKey, 1.0)
	}
}
