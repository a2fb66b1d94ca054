// Package generator drives book generation runs. Pages are always processed
// sequentially by a single worker goroutine; the HTTP layer only enqueues.
package generator

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"storybook/internal/domain"
	"storybook/internal/tracker"
)

// ImageGenerator produces one illustration for a prompt. refImageB64 is an
// optional base64 reference photo.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt, refImageB64 string) (string, error)
}

// runRequest asks the worker to process a whole job, or a single page when
// pageNumber is set.
type runRequest struct {
	jobID       string
	pageNumber  int
	refImageB64 string
}

// Runner owns the generation queue and the stale-job sweep.
type Runner struct {
	tracker   *tracker.Tracker
	images    ImageGenerator
	logger    zerolog.Logger
	queue     chan runRequest
	staleCut  time.Duration
	retryWait time.Duration
}

const (
	defaultQueueSize = 16
	defaultStaleCut  = 30 * time.Minute
	defaultRetryWait = 2 * time.Second
	staleSweepPeriod = 5 * time.Minute
	generateAttempts = 2
)

// Option tweaks Runner construction.
type Option func(*Runner)

// WithQueueSize sets how many runs may wait before Submit reports busy.
func WithQueueSize(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.queue = make(chan runRequest, n)
		}
	}
}

// WithStaleCutoff sets how long an in_progress job may sit untouched before
// the sweep pauses it.
func WithStaleCutoff(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.staleCut = d
		}
	}
}

// WithRetryDelay sets the pause between image generation attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.retryWait = d
		}
	}
}

// New creates a Runner. Start must be called before Submit is useful.
func New(tr *tracker.Tracker, images ImageGenerator, logger zerolog.Logger, opts ...Option) *Runner {
	r := &Runner{
		tracker:   tr,
		images:    images,
		logger:    logger,
		queue:     make(chan runRequest, defaultQueueSize),
		staleCut:  defaultStaleCut,
		retryWait: defaultRetryWait,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Submit enqueues a full-job run. Returns domain.ErrRunnerBusy when the queue
// is full.
func (r *Runner) Submit(jobID, refImageB64 string) error {
	return r.enqueue(runRequest{jobID: jobID, refImageB64: refImageB64})
}

// SubmitPage enqueues a single-page regeneration.
func (r *Runner) SubmitPage(jobID string, pageNumber int, refImageB64 string) error {
	return r.enqueue(runRequest{jobID: jobID, pageNumber: pageNumber, refImageB64: refImageB64})
}

func (r *Runner) enqueue(req runRequest) error {
	select {
	case r.queue <- req:
		return nil
	default:
		return domain.ErrRunnerBusy
	}
}

// Start runs the worker loop until ctx is cancelled. It also sweeps stale
// in_progress jobs to paused on a fixed period.
func (r *Runner) Start(ctx context.Context) {
	go r.loop(ctx)
}

func (r *Runner) loop(ctx context.Context) {
	sweep := time.NewTicker(staleSweepPeriod)
	defer sweep.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("generation runner stopped")
			return
		case req := <-r.queue:
			if req.pageNumber > 0 {
				r.processPage(ctx, req)
			} else {
				r.processJob(ctx, req)
			}
		case <-sweep.C:
			if _, err := r.tracker.MarkStaleJobsPaused(ctx, r.staleCut); err != nil {
				r.logger.Error().Err(err).Msg("stale job sweep failed")
			}
		}
	}
}
