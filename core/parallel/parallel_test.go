package parallel

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelizeCoversRangeOnce(t *testing.T) {
	for _, items := range []int{1, 7, 100, 1001} {
		t.Run(fmt.Sprint(items), func(t *testing.T) {
			hits := make([]int32, items)
			err := Parallelize(items, func(start, end int) error {
				for i := start; i < end; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
				return nil
			})
			require.NoError(t, err)
			for i, h := range hits {
				assert.Equal(t, int32(1), h, "index %d", i)
			}
		})
	}
}

func TestParallelizeReturnsError(t *testing.T) {
	err := Parallelize(1000, func(start, end int) error {
		if start <= 500 && 500 < end {
			return fmt.Errorf("bad row %d", 500)
		}
		return nil
	})
	assert.EqualError(t, err, "bad row 500")
}

func TestParallelizeWithThreshold(t *testing.T) {
	var calls int32
	err := ParallelizeWithThreshold(10, 100, func(start, end int) error {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls)

	err = ParallelizeWithThreshold(0, 100, func(start, end int) error {
		t.Fatal("fn must not be called for an empty range")
		return nil
	})
	assert.NoError(t, err)
}
