package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrQueueStopped is returned when submitting a job to a stopped queue.
	ErrQueueStopped = errors.New("queue is stopped")
	// ErrJobPanicked is returned when the task of a job panics.
	// The worker keeps running.
	ErrJobPanicked = errors.New("job panicked")
)

// Job represents the job to be run
type Job[T any] struct {
	Task func() (T, error)
}

// Result represents the result of a job
type JobResult[T any] struct {
	Result T
	Err    error
}

type queuedJob[T any] struct {
	ctx         context.Context
	job         Job[T]
	resultQueue chan JobResult[T]
}

// Queue is a single worker that executes submitted jobs one at a time
// in submission order. All jobs run on the same goroutine, so state
// that is only touched from jobs needs no further synchronization.
type Queue[T any] struct {
	jobChannel chan queuedJob[T]
	quitChan   chan struct{}

	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewQueue returns a queue that buffers up to bufferSize jobs.
// The queue does not run jobs until Start is called.
func NewQueue[T any](bufferSize int) *Queue[T] {
	return &Queue[T]{
		jobChannel: make(chan queuedJob[T], bufferSize),
		quitChan:   make(chan struct{}),
	}
}

// Start starts the worker goroutine.
func (q *Queue[T]) Start() {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case queued := <-q.jobChannel:
				// Buffered, never blocks the worker.
				queued.resultQueue <- run(queued)
			case <-q.quitChan:
				return
			}
		}
	}()
}

// run executes the task unless the submitter gave up while the job was queued.
// A panic in the task is returned as ErrJobPanicked.
func run[T any](queued queuedJob[T]) (jobResult JobResult[T]) {
	if err := queued.ctx.Err(); err != nil {
		return JobResult[T]{Err: err}
	}

	defer func() {
		if r := recover(); r != nil {
			jobResult = JobResult[T]{Err: fmt.Errorf("%w: %v", ErrJobPanicked, r)}
		}
	}()

	result, err := queued.job.Task()
	return JobResult[T]{Result: result, Err: err}
}

// Submit enqueues the job and waits for its result.
// If ctx is done before the job starts, the job is skipped. If ctx is done
// while the job runs, ctx.Err() is returned and the job still completes.
func (q *Queue[T]) Submit(ctx context.Context, job Job[T]) (T, error) {
	var zero T

	queued := queuedJob[T]{
		ctx:         ctx,
		job:         job,
		resultQueue: make(chan JobResult[T], 1),
	}

	select {
	case <-q.quitChan:
		return zero, ErrQueueStopped
	default:
	}

	select {
	case q.jobChannel <- queued:
	case <-q.quitChan:
		return zero, ErrQueueStopped
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	select {
	case result := <-queued.resultQueue:
		return result.Result, result.Err
	case <-q.quitChan:
		return zero, ErrQueueStopped
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Stop stops the worker and waits for the job in progress to finish.
// Jobs still buffered are dropped. Stop is idempotent.
func (q *Queue[T]) Stop() {
	q.stopOnce.Do(func() {
		close(q.quitChan)
	})
	q.wg.Wait()
}
