// Package headless runs the benchmark without a window: the render loop is
// driven by a cooperative queue scheduler and sweeps a list of point counts.
package headless

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/soocke/voronoi-bench/domain/bench"
	"github.com/soocke/voronoi-bench/domain/sampling"
	"github.com/soocke/voronoi-bench/domain/stats"
)

// Options configures a sweep.
type Options struct {
	Logger        *slog.Logger
	Factory       bench.RendererFactory
	Points        []int // point counts to measure, in order
	Cycles        int   // completed windows per point count
	Interval      time.Duration
	Policy        sampling.Policy
	MaxPointCount int
	Clock         func() time.Time
	// OnSetup, if set, is called with the wired benchmark before it starts.
	OnSetup func(*bench.Bench) error
}

// Result summarizes the measurements for one point count.
type Result struct {
	PointCount int
	Cycles     int
	Samples    int64
	Last       stats.Statistics // statistics of the last completed window
	P50        float64
	P99        float64
	Max        float64
	Err        error
}

// Failed reports whether any result carries an error.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run measures each point count in opts.Points for opts.Cycles windows. It
// returns early with the partial results if ctx ends. A rejected point count
// is recorded with its error and skipped. A render or update failure ends the
// sweep; the failing point count's Result carries the error.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if len(opts.Points) == 0 {
		return nil, fmt.Errorf("headless: no point counts to measure")
	}
	if opts.Cycles <= 0 {
		opts.Cycles = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	input := &sweepInput{value: strconv.Itoa(opts.Points[0])}
	sink := &logSink{logger: logger}
	sched := bench.NewQueueScheduler(opts.Interval)
	b, err := bench.Setup(bench.Options{
		Logger:        logger,
		Input:         input,
		Sink:          sink,
		Factory:       opts.Factory,
		Scheduler:     sched,
		Policy:        opts.Policy,
		MaxPointCount: opts.MaxPointCount,
		Clock:         opts.Clock,
	})
	if err != nil {
		return nil, err
	}
	if opts.OnSetup != nil {
		if err := opts.OnSetup(b); err != nil {
			return nil, err
		}
	}

	s := &sweep{
		points: opts.Points,
		cycles: opts.Cycles,
		dist:   stats.NewDistribution(),
		input:  input,
		bench:  b,
		logger: logger,
	}
	b.Loop.AddSampleListener(s.dist.Record)
	b.Loop.AddCycleListener(s.onCycle)
	b.Params.AddListener(s.onChange)

	if err := b.Start(); err != nil {
		return nil, err
	}
	runErr := sched.Run(ctx)
	b.Stop()
	if !s.done() {
		// The loop went idle or ctx ended before the current point count finished.
		cause := sink.lastErr
		if cause == nil {
			cause = runErr
		}
		if cause == nil {
			cause = fmt.Errorf("loop stopped")
		}
		s.finish(cause)
	}
	return s.results, runErr
}

type sweep struct {
	points  []int
	idx     int
	cycles  int
	seen    int
	last    stats.Statistics
	dist    *stats.Distribution
	input   *sweepInput
	bench   *bench.Bench
	results []Result
	logger  *slog.Logger
}

func (s *sweep) done() bool { return s.idx >= len(s.points) }

func (s *sweep) onCycle(st stats.Statistics) {
	s.seen++
	s.last = st
	if s.seen < s.cycles {
		return
	}
	s.finish(nil)
	if s.done() {
		s.bench.Stop()
		return
	}
	s.input.set(strconv.Itoa(s.points[s.idx]))
}

func (s *sweep) onChange(n int, err error) {
	var invalid *bench.InvalidParameterError
	if errors.As(err, &invalid) && !s.done() {
		s.skip(err)
		return
	}
	if err != nil {
		s.logger.Warn("sweep point count rejected", "error", err)
		return
	}
	s.dist.Reset()
	s.seen = 0
	s.last = stats.Statistics{}
}

// skip records the current point count as rejected and moves on. The loop is
// still running the previous point count, so none of its samples count.
func (s *sweep) skip(err error) {
	pc := s.points[s.idx]
	s.results = append(s.results, Result{PointCount: pc, Err: err})
	s.logger.Error("point count rejected", "point_count", pc, "error", err)
	s.idx++
	s.dist.Reset()
	s.seen = 0
	s.last = stats.Statistics{}
	if s.done() {
		s.bench.Stop()
		return
	}
	s.input.set(strconv.Itoa(s.points[s.idx]))
}

func (s *sweep) finish(err error) {
	r := Result{
		PointCount: s.points[s.idx],
		Cycles:     s.seen,
		Samples:    s.dist.Count(),
		Last:       s.last,
		P50:        s.dist.Percentile(50),
		P99:        s.dist.Percentile(99),
		Max:        s.dist.Max(),
		Err:        err,
	}
	s.results = append(s.results, r)
	s.idx++
	if err != nil {
		s.logger.Error("point count failed", "point_count", r.PointCount, "error", err)
		s.idx = len(s.points)
		return
	}
	s.logger.Info("point count measured",
		"point_count", r.PointCount,
		"mean_ms", r.Last.Mean,
		"stddev_ms", r.Last.StdDev,
		"p50_ms", r.P50,
		"p99_ms", r.P99,
		"samples", r.Samples)
}

// sweepInput is the InputSource the sweep drives.
type sweepInput struct {
	value    string
	handlers []func(string)
}

func (i *sweepInput) Value() string { return i.value }

func (i *sweepInput) OnChange(fn func(string)) { i.handlers = append(i.handlers, fn) }

func (i *sweepInput) set(v string) {
	i.value = v
	for _, h := range i.handlers {
		h(v)
	}
}

// logSink is the Sink for runs without a window.
type logSink struct {
	logger  *slog.Logger
	lastErr error
}

func (s *logSink) SetStatusText(text string) { s.logger.Debug("status", "text", text) }

func (s *logSink) SetStatistics(mean, stddev string) {
	s.logger.Debug("window statistics", "mean", mean, "stddev", stddev)
}

func (s *logSink) SetPointCountLabel(n int) { s.logger.Debug("point count", "point_count", n) }

func (s *logSink) SetError(err error) { s.lastErr = err }
