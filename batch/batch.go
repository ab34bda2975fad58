package batch

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridrun/grid"
	"github.com/katalvlaran/gridrun/motion"
	"github.com/katalvlaran/gridrun/search"
)

// Query is one independent search request.
type Query struct {
	Name    string
	Grid    *grid.Grid
	Start   grid.Position
	Goal    search.Goal
	Policy  motion.Policy
	Timeout time.Duration // 0 = no per-query limit
	Options []search.Option
}

// Answer is the outcome of one Query. Err is nil on success, search.ErrNoPath
// when the goal is unreachable, or any other error Solve returned.
type Answer struct {
	Name   string
	Result search.Result
	Err    error
}

// Options configures Run.
type Options struct {
	Workers int
	Logger  logrus.FieldLogger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches may run at once. Values < 1 mean runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger routes per-query logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// Run solves every query and returns the answers in query order.
// The returned error is non-nil only if ctx ended before all queries finished;
// answers completed so far are still returned.
func Run(ctx context.Context, queries []Query, opts ...Option) ([]Answer, error) {
	cfg := Options{Workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}

	answers := make([]Answer, len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)

	for i := range queries {
		i := i // per-iteration copy (go directive < 1.22)
		q := queries[i]
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				answers[i] = Answer{Name: q.Name, Err: err}
				return err
			}
			qctx := ctx
			if q.Timeout > 0 {
				var cancel context.CancelFunc
				qctx, cancel = context.WithTimeout(ctx, q.Timeout)
				defer cancel()
			}
			sopts := append([]search.Option{search.WithContext(qctx)}, q.Options...)
			if cfg.Logger != nil {
				sopts = append(sopts, search.WithLogger(cfg.Logger.WithField("query", q.Name)))
			}
			res, err := search.Solve(q.Grid, q.Start, q.Goal, q.Policy, sopts...)
			answers[i] = Answer{Name: q.Name, Result: res, Err: err}
			if cfg.Logger != nil {
				entry := cfg.Logger.WithFields(logrus.Fields{"query": q.Name, "expanded": res.Expanded})
				if err != nil {
					entry.WithError(err).Info("query failed")
				} else {
					entry.WithField("cost", res.Cost).Info("query solved")
				}
			}
			// Only cancellation of the whole batch is fatal; a per-query timeout is not.
			if errors.Is(err, search.ErrDeadlineExceeded) && ctx.Err() != nil {
				return ctx.Err()
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return answers, err
	}

	return answers, nil
}
