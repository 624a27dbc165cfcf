package async

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/common"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/pipeline"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
)

// ValidatorQueue runs queued validations on a bounded worker pool. Each job
// gets up to maxAttempts pipeline executions with a fixed delay between them;
// when attempts are exhausted the run is stamped failed with the last error.
type ValidatorQueue struct {
	proc    *pipeline.Processor
	runs    repository.RunRepository
	logger  *slog.Logger
	workers int
	timeout time.Duration

	maxAttempts int
	retryDelay  time.Duration

	locks *scopeLock

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ValidatorQueue)

func WithWorkers(n int) Option {
	return func(q *ValidatorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ValidatorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *ValidatorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func WithMaxAttempts(n int) Option {
	return func(q *ValidatorQueue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(q *ValidatorQueue) {
		if d >= 0 {
			q.retryDelay = d
		}
	}
}

func NewValidatorQueue(proc *pipeline.Processor, runs repository.RunRepository, logger *slog.Logger, opts ...Option) *ValidatorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ValidatorQueue{
		proc:        proc,
		runs:        runs,
		logger:      logger,
		workers:     4,
		timeout:     10 * time.Minute,
		maxAttempts: 3,
		retryDelay:  15 * time.Second,
		locks:       newScopeLock(),
		ch:          make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

// Enqueue claims the job's upload scope and queues it. A scope with a
// validation already in flight is rejected so staging writes cannot
// interleave; the caller surfaces this as a retryable conflict.
func (q *ValidatorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "run_id", job.RunID)
		return fmt.Errorf("queue is shutting down")
	}
	scope := job.Request.Scope()
	if !q.locks.TryAcquire(scope) {
		q.logger.Warn("scope busy, rejecting enqueue", "run_id", job.RunID, "filename", scope.Filename)
		return common.ErrRunInProgress
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued validation", "run_id", job.RunID, "filename", scope.Filename)
	default:
		q.logger.Warn("queue full, applying backpressure", "run_id", job.RunID)
		q.ch <- job
	}
	return nil
}

func (q *ValidatorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)
				for job := range q.ch {
					q.process(workerID, job)
				}
				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ValidatorQueue) process(workerID int, job Job) {
	defer q.locks.Release(job.Request.Scope())

	var lastErr error
	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		run, stats, err := q.proc.Run(ctx, job.Request)
		cancel()

		if err == nil {
			// run is already completed by the persister; fold in mapping stats
			if derr := q.runs.MergeProcessingDetails(context.Background(), job.RunID, map[string]any{
				"mapping":      stats,
				"submitted_at": job.SubmittedAt.UTC().Format(time.RFC3339),
				"attempts":     attempt,
			}); derr != nil {
				q.logger.Warn("merging mapping stats failed", "run_id", job.RunID, "err", derr)
			}
			q.logger.Info("validation succeeded",
				"worker_id", workerID,
				"run_id", job.RunID,
				"score", run.Score,
				"attempt", attempt,
			)
			return
		}

		lastErr = err
		q.logger.Error("validation attempt failed",
			"worker_id", workerID,
			"run_id", job.RunID,
			"attempt", attempt,
			"max_attempts", q.maxAttempts,
			"error", err,
		)
		if attempt < q.maxAttempts {
			time.Sleep(q.retryDelay)
		}
	}

	// terminal failure
	msg := fmt.Sprintf("exhausted %d attempts: %v", q.maxAttempts, lastErr)
	if q.maxAttempts == 1 {
		msg = lastErr.Error()
	}
	if err := q.runs.MarkFailed(context.Background(), job.RunID, msg); err != nil {
		q.logger.Error("marking run failed errored", "run_id", job.RunID, "err", err)
	}
}

func (q *ValidatorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
