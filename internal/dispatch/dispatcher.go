package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/apperrors"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/async"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/llm"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/logging"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/metrics"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/prompt"
)

// Status is the lifecycle state of a Job. Terminal states are final; a job
// never re-enters the queue, retries happen inside Executing.
type Status int32

const (
	StatusQueued Status = iota
	StatusExecuting
	StatusSucceeded
	StatusFailed
)

// Job is one provider-call request awaiting serialized execution. The
// submitting caller holds the handle; the dispatcher fulfills it exactly once.
type Job struct {
	ID string

	turns  []prompt.Turn
	status atomic.Int32

	// answer and err are written before done is closed, never after.
	answer string
	err    error
	done   chan struct{}
}

// Status returns the job's current lifecycle state.
func (j *Job) Status() Status {
	return Status(j.status.Load())
}

// Wait blocks until the job reaches a terminal state or ctx is done.
// Cancelling ctx only stops waiting: the job stays queued and the worker
// still drives it to completion to preserve FIFO order for later jobs.
func (j *Job) Wait(ctx context.Context) (string, error) {
	select {
	case <-j.done:
		return j.answer, j.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Config tunes the dispatcher's retry policy.
type Config struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// BaseDelay is the first backoff delay; it doubles each retry.
	BaseDelay time.Duration
}

// DefaultConfig matches the provider's observed rate-limit behavior.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 4,
		BaseDelay:  2 * time.Second,
	}
}

// Dispatcher serializes provider calls: any number of callers may submit
// concurrently, but exactly one worker executes jobs one at a time in FIFO
// order. Backoff sleeps happen inside the worker, so the whole queue
// throttles to the provider's rate limit instead of hammering it.
//
// One instance per process, constructed at startup and injected into
// handlers. The queue is unbounded and Submit never blocks.
type Dispatcher struct {
	client llm.Client
	cfg    Config
	logger logging.Logger

	mu      sync.Mutex
	queue   []*Job
	running bool

	// sleep is swapped out in tests to observe backoff delays.
	sleep func(time.Duration)
}

// New creates a dispatcher for the given provider client.
func New(client llm.Client, cfg Config, logger logging.Logger) *Dispatcher {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultConfig().BaseDelay
	}
	return &Dispatcher{
		client: client,
		cfg:    cfg,
		logger: logging.OrNop(logger),
		sleep:  time.Sleep,
	}
}

// Submit appends a job to the queue tail and returns its handle immediately.
// It never blocks and never fails. The submitter that finds no worker
// running claims the worker role, so exactly one worker loop exists whenever
// jobs are pending.
func (d *Dispatcher) Submit(turns []prompt.Turn) *Job {
	job := &Job{
		ID:    uuid.NewString(),
		turns: turns,
		done:  make(chan struct{}),
	}

	d.mu.Lock()
	d.queue = append(d.queue, job)
	metrics.QueueDepth.Set(float64(len(d.queue)))
	claimed := !d.running
	if claimed {
		d.running = true
	}
	d.mu.Unlock()

	if claimed {
		async.Go(d.logger, "dispatch-worker", d.work)
	}

	return job
}

// Depth returns the number of jobs currently waiting (not executing).
func (d *Dispatcher) Depth() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// work drains the queue one job at a time and exits when it is empty. The
// running flag is cleared under the same lock that observes emptiness, so a
// concurrent Submit either sees the worker running or starts a new one.
func (d *Dispatcher) work() {
	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.running = false
			d.mu.Unlock()
			return
		}
		job := d.queue[0]
		d.queue = d.queue[1:]
		metrics.QueueDepth.Set(float64(len(d.queue)))
		d.mu.Unlock()

		d.execute(job)
	}
}

// execute drives one job from Executing to a terminal state, retrying
// rate-limited attempts with exponential backoff. Any other failure class,
// or retry exhaustion, fails the job with the last observed error.
func (d *Dispatcher) execute(job *Job) {
	job.status.Store(int32(StatusExecuting))

	var lastErr *apperrors.ProviderError

	for attempt := 0; attempt <= d.cfg.MaxRetries; attempt++ {
		metrics.ProviderAttempts.Inc()

		answer, err := d.client.Generate(context.Background(), job.turns)
		if err == nil {
			if attempt > 0 {
				d.logger.Info("job %s succeeded after %d attempts", job.ID, attempt+1)
			}
			job.answer = answer
			job.status.Store(int32(StatusSucceeded))
			close(job.done)
			return
		}

		lastErr = apperrors.Classify(err)

		if lastErr.Class != apperrors.ClassRateLimit || attempt == d.cfg.MaxRetries {
			break
		}

		delay := d.cfg.BaseDelay * time.Duration(1<<attempt)
		d.logger.Warn("job %s rate limited, retry %d/%d in %v",
			job.ID, attempt+1, d.cfg.MaxRetries, delay)
		d.sleep(delay)
	}

	d.logger.Warn("job %s failed: %v (class=%s)", job.ID, lastErr, lastErr.Class)
	job.err = lastErr
	job.status.Store(int32(StatusFailed))
	close(job.done)
}
