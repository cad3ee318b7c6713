// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/absorb/absorption"
	"github.com/katalvlaran/absorb/cache"
	"github.com/katalvlaran/absorb/chain"
)

// Job is one chain to solve. Start < 0 selects the first transient state;
// use NewJob to get that default.
type Job struct {
	Name  string
	Chain *chain.Chain
	Start int
}

// NewJob returns a Job for the default start state.
func NewJob(name string, c *chain.Chain) Job {
	return Job{Name: name, Chain: c, Start: -1}
}

// Outcome is the result of one Job. Result is nil on a cache hit; Sequence
// is set whenever Err is nil.
type Outcome struct {
	Name     string
	Result   *absorption.Result
	Sequence []*big.Int
	Cached   bool
	Err      error
	Duration time.Duration
}

// Runner solves jobs concurrently.
type Runner struct {
	workers int
	cache   cache.Cache
	logger  *log.Logger
	metrics *Metrics
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds concurrency. Values < 1 are ignored.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithCache consults and fills c around each solve.
func WithCache(c cache.Cache) Option {
	return func(r *Runner) {
		if c != nil {
			r.cache = c
		}
	}
}

// WithLogger sets the logger for per-job debug lines and cache warnings.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records solves on m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// NewRunner returns a Runner with GOMAXPROCS workers, no cache, the default
// logger and no metrics, adjusted by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		workers: runtime.GOMAXPROCS(0),
		cache:   cache.NewNullCache(),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run solves every job and returns one Outcome per job, in job order. Jobs
// not started before ctx is done get ctx.Err() as their error. Log lines of
// one call share a random run id.
func (r *Runner) Run(ctx context.Context, jobs []Job) []Outcome {
	out := make([]Outcome, len(jobs))
	logger := r.logger.With("run", uuid.NewString())
	logger.Debug("batch started", "jobs", len(jobs), "workers", r.workers)
	began := time.Now()
	var g errgroup.Group
	g.SetLimit(r.workers)

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			for k := i; k < len(jobs); k++ {
				out[k] = Outcome{Name: jobs[k].Name, Err: err}
				r.record(out[k])
			}
			break
		}
		g.Go(func() error {
			out[i] = r.Solve(ctx, job)
			return nil
		})
	}
	_ = g.Wait()
	logger.Debug("batch finished", "duration", time.Since(began))

	return out
}

// Solve runs a single job through the cache and the solver.
func (r *Runner) Solve(ctx context.Context, job Job) Outcome {
	began := time.Now()
	o := r.solve(ctx, job)
	o.Name = job.Name
	o.Duration = time.Since(began)
	r.record(o)

	if o.Err != nil {
		r.logger.Debug("solve failed", "job", job.Name, "err", o.Err)
	} else {
		r.logger.Debug("solved", "job", job.Name, "cached", o.Cached, "duration", o.Duration)
	}

	return o
}

func (r *Runner) solve(ctx context.Context, job Job) Outcome {
	if err := ctx.Err(); err != nil {
		return Outcome{Err: err}
	}
	if job.Chain == nil {
		return Outcome{Err: fmt.Errorf("%w: nil chain", absorption.ErrInvalidChain)}
	}

	key := cache.Key(job.Chain, job.Start)
	seq, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cache get failed", "job", job.Name, "err", err)
	}
	if ok {
		return Outcome{Sequence: seq, Cached: true}
	}

	res, err := absorption.Solve(job.Chain, absorption.WithStart(job.Start))
	if err != nil {
		return Outcome{Err: err}
	}
	seq = res.Sequence()
	if err := r.cache.Set(ctx, key, seq); err != nil {
		r.logger.Warn("cache set failed", "job", job.Name, "err", err)
	}

	return Outcome{Result: res, Sequence: seq}
}

func (r *Runner) record(o Outcome) {
	if r.metrics == nil {
		return
	}
	r.metrics.Solves.WithLabelValues(Label(o.Err)).Inc()
	if o.Err == nil {
		r.metrics.Duration.Observe(o.Duration.Seconds())
	}
	if o.Cached {
		r.metrics.CacheHits.Inc()
	}
}

// Label classifies err into an absorb_solves_total outcome label.
func Label(err error) string {
	switch {
	case err == nil:
		return LabelOK
	case errors.Is(err, absorption.ErrInvalidChain), errors.Is(err, absorption.ErrStartNotTransient):
		return LabelInvalid
	case errors.Is(err, absorption.ErrUnreachableAbsorption):
		return LabelUnreachable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return LabelCanceled
	default:
		return LabelError
	}
}
