// Package workers provides a bounded task pool for CPU-heavy work.
//
// Password hashing with bcrypt is deliberately slow; running it inline
// would let a burst of signups or logins occupy every request goroutine.
// The pool caps how many hash computations run at once while other
// requests keep being dispatched.
package workers

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned by Submit after Close has been called.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a unit of work executed by a pool worker.
type Task func()

// Pool is a fixed-size worker pool. Submitted tasks are executed by one
// of the pool's goroutines; Submit blocks until a worker accepts the
// task or the caller's context is cancelled.
type Pool struct {
	tasks chan Task
	done  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once
}

// NewPool starts size worker goroutines and returns the pool.
// A non-positive size is treated as 1.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}

	p := &Pool{
		tasks: make(chan Task),
		done:  make(chan struct{}),
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}

	return p
}

// Submit hands the task to a pool worker. It blocks until a worker is
// free, the pool is closed, or ctx is done; in the latter two cases the
// task never runs and the corresponding error is returned.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	select {
	case <-p.done:
		return ErrPoolClosed
	default:
	}

	select {
	case p.tasks <- task:
		return nil
	case <-p.done:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting new tasks and waits for in-flight tasks to finish.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.tasks:
			task()
		case <-p.done:
			return
		}
	}
}
