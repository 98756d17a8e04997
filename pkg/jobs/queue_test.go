package jobs

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueProcessesJobs(t *testing.T) {
	var processed atomic.Int32
	q := NewQueue("test", func(context.Context, Job) error {
		processed.Add(1)
		return nil
	}, QueueConfig{Workers: 1, RetryDelay: time.Millisecond})

	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "1", Type: "noop"}))
	require.NoError(t, q.Enqueue(Job{ID: "2", Type: "noop"}))

	assert.Eventually(t, func() bool { return processed.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestQueueRetriesThenDrops(t *testing.T) {
	var attempts atomic.Int32
	q := NewQueue("test", func(context.Context, Job) error {
		attempts.Add(1)
		return fmt.Errorf("always fails")
	}, QueueConfig{Workers: 1, MaxRetries: 3, RetryDelay: time.Millisecond})

	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "1", Type: "failing"}))

	assert.Eventually(t, func() bool { return attempts.Load() == 3 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestQueueEnqueueBeforeStart(t *testing.T) {
	q := NewQueue("test", func(context.Context, Job) error { return nil }, QueueConfig{})

	err := q.Enqueue(Job{ID: "1"})
	assert.Error(t, err)
}
