// Package teardown runs cleanup jobs registered while tests create live
// resources. Jobs start as soon as they are registered and Close waits for
// all of them.
package teardown

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
	"golang.org/x/sync/errgroup"
)

// Queue errors.
var (
	ErrQueueFull   = errors.New("teardown queue is full")
	ErrQueueClosed = errors.New("teardown queue is closed")
)

// Job removes one resource.
type Job func(ctx context.Context) error

type entry struct {
	name string
	job  Job
}

// Queue is a bounded queue of cleanup jobs drained by a single dispatcher.
type Queue struct {
	mu     sync.Mutex
	closed bool
	limit  int
	jobs   chan entry

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	err    error
	logger registrar.Logger
}

// New starts a queue that runs at most size jobs at once and holds at most
// size more pending. A size below one means constants.TeardownQueueSize.
func New(size int, logger registrar.Logger) *Queue {
	if size < 1 {
		size = constants.TeardownQueueSize
	}

	if logger == nil {
		logger = registrar.NopLogger{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	queue := &Queue{
		limit:  size,
		jobs:   make(chan entry, size),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
		logger: logger,
	}

	go queue.dispatch()

	return queue
}

// Register enqueues job without blocking. It fails when the queue is full
// or already closed; the resource is then left behind.
func (q *Queue) Register(name string, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return fmt.Errorf("registering %s: %w", name, ErrQueueClosed)
	}

	select {
	case q.jobs <- entry{name: name, job: job}:
		return nil
	default:
		return fmt.Errorf("registering %s: %w", name, ErrQueueFull)
	}
}

// Close stops intake and waits until every registered job has finished.
// When ctx ends first, running jobs are canceled and ctx's error is
// returned. Otherwise Close returns the first job failure, if any.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return q.err
	case <-ctx.Done():
		q.cancel()
		<-q.done

		return fmt.Errorf("draining teardown queue: %w", ctx.Err())
	}
}

func (q *Queue) dispatch() {
	defer close(q.done)
	defer q.cancel()

	var group errgroup.Group

	group.SetLimit(q.limit)

	for item := range q.jobs {
		group.Go(func() error {
			q.logger.Debug("Running cleanup", map[string]interface{}{"job": item.name})

			err := item.job(q.ctx)
			if err != nil {
				q.logger.Error("Cleanup failed", map[string]interface{}{"job": item.name, "error": err.Error()})

				return fmt.Errorf("cleaning up %s: %w", item.name, err)
			}

			return nil
		})
	}

	q.err = group.Wait()
}
