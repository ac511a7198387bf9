// Package metrics exports benchmark activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/soocke/voronoi-bench/domain/bench"
	"github.com/soocke/voronoi-bench/domain/stats"
)

// Collector holds the benchmark metric families.
type Collector struct {
	renderDuration prometheus.Histogram
	frames         prometheus.Counter
	cycles         prometheus.Counter
	failures       prometheus.Counter
	windowMean     prometheus.Gauge
	windowStdDev   prometheus.Gauge
	pointCount     prometheus.Gauge
	loopState      *prometheus.GaugeVec
	changes        *prometheus.CounterVec

	failuresSeen uint64
}

// NewCollector creates unregistered metric families.
func NewCollector() *Collector {
	return &Collector{
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bench_render_duration_ms",
			Help:    "Duration of individual render calls in milliseconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 14),
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bench_frames_total",
			Help: "Total number of measured render calls",
		}),
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bench_cycles_total",
			Help: "Total number of completed sample windows",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bench_render_failures_total",
			Help: "Total number of failed render calls",
		}),
		windowMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bench_window_mean_ms",
			Help: "Mean render time over the last completed window (ms)",
		}),
		windowStdDev: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bench_window_stddev_ms",
			Help: "Population standard deviation of render time over the last completed window (ms)",
		}),
		pointCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bench_point_count",
			Help: "Point count the renderer is configured with",
		}),
		loopState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bench_loop_state",
				Help: "1 for the render loop's current state, 0 otherwise",
			},
			[]string{"state"},
		),
		changes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bench_parameter_changes_total",
				Help: "Point count changes by result",
			},
			[]string{"result"},
		),
	}
}

// Register adds all families to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{
		c.renderDuration,
		c.frames,
		c.cycles,
		c.failures,
		c.windowMean,
		c.windowStdDev,
		c.pointCount,
		c.loopState,
		c.changes,
	} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// Attach subscribes the collector to a benchmark's loop and parameter handler.
func (c *Collector) Attach(b *bench.Bench) {
	c.pointCount.Set(float64(b.Params.PointCount()))
	c.setState(b.Loop.State())
	b.Loop.AddSampleListener(c.ObserveSample)
	b.Loop.AddCycleListener(c.ObserveCycle)
	b.Loop.AddStateListener(func(prev, next bench.LoopState) {
		c.setState(next)
		if prev == bench.StateRunning && next == bench.StateIdle {
			c.syncFailures(b.Loop.Stats().Failures)
		}
	})
	b.Params.AddListener(c.ObserveChange)
}

// ObserveSample records one render duration.
func (c *Collector) ObserveSample(ms float64) {
	c.frames.Inc()
	c.renderDuration.Observe(ms)
}

// ObserveCycle publishes completed window statistics.
func (c *Collector) ObserveCycle(s stats.Statistics) {
	c.cycles.Inc()
	c.windowMean.Set(s.Mean)
	c.windowStdDev.Set(s.StdDev)
}

// ObserveChange counts a parameter change outcome.
func (c *Collector) ObserveChange(n int, err error) {
	if err != nil {
		c.changes.WithLabelValues("rejected").Inc()
		return
	}
	c.changes.WithLabelValues("accepted").Inc()
	c.pointCount.Set(float64(n))
}

// syncFailures advances the failure counter to the loop's running total.
func (c *Collector) syncFailures(total uint64) {
	if total > c.failuresSeen {
		c.failures.Add(float64(total - c.failuresSeen))
		c.failuresSeen = total
	}
}

func (c *Collector) setState(s bench.LoopState) {
	for _, st := range []bench.LoopState{bench.StateIdle, bench.StateScheduled, bench.StateRunning} {
		v := 0.0
		if st == s {
			v = 1
		}
		c.loopState.WithLabelValues(st.String()).Set(v)
	}
}
