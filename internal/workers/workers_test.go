package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Submit_RunsTasks(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	var ran atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		err := p.Submit(context.Background(), func() {
			defer wg.Done()
			ran.Add(1)
		})
		require.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, int64(10), ran.Load())
}

func TestPool_Submit_BoundedConcurrency(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	var inFlight, maxInFlight atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		err := p.Submit(context.Background(), func() {
			defer wg.Done()
			cur := inFlight.Add(1)
			if cur > maxInFlight.Load() {
				maxInFlight.Store(cur)
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
		})
		require.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, int64(1), maxInFlight.Load(), "pool of size 1 must never run tasks concurrently")
}

func TestPool_Submit_ContextCancelled(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	// occupy the only worker
	blocker := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, p.Submit(context.Background(), func() {
		defer wg.Done()
		<-blocker
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := p.Submit(ctx, func() {
		t.Error("task must not run after context cancellation")
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(blocker)
	wg.Wait()
}

func TestPool_Submit_AfterClose(t *testing.T) {
	p := NewPool(1)
	p.Close()

	err := p.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPool_Close_Idempotent(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close() // second close must not panic
}
