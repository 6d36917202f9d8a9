package systems

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobSystemValidates(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	assert.ErrorIs(t, err, ErrNoWorkers)
	_, err = NewJobSystem(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestJobSystemRunsEveryJob(t *testing.T) {
	js, err := NewJobSystem(3, 0)
	require.NoError(t, err)

	results := make([]int, 10)
	var failures atomic.Int32
	boom := errors.New("boom")
	for i := range results {
		js.Submit(JobTask{
			Name: "square",
			OnStart: func() (interface{}, error) {
				if i == 7 {
					return nil, boom
				}
				return i * i, nil
			},
			OnComplete: func(result interface{}) { results[i] = result.(int) },
			OnFailure: func(err error) {
				assert.ErrorIs(t, err, boom)
				failures.Add(1)
			},
		})
	}
	js.Wait()

	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 0, 64, 81}, results)
	assert.Equal(t, int32(1), failures.Load())

	require.NoError(t, js.Shutdown())
	require.NoError(t, js.Shutdown(), "shutdown twice")
}
