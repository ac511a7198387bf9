package model

import (
	"github.com/soocke/voronoi-bench/domain/stats"
)

// LatencySummary is a percentile view of render times since the last reset.
type LatencySummary struct {
	P50   float64
	P90   float64
	P99   float64
	Max   float64
	Count int64
}

// LatencyModel accumulates every measured render time for the current point
// count. Unlike the sample window it is unbounded, so percentiles cover the
// whole run. Updates occur on the UI thread.
type LatencyModel struct {
	dist *stats.Distribution
}

func NewLatencyModel() *LatencyModel { return &LatencyModel{dist: stats.NewDistribution()} }

// Observe records one render duration in milliseconds.
func (m *LatencyModel) Observe(ms float64) {
	if m == nil || m.dist == nil {
		return
	}
	m.dist.Record(ms)
}

// Reset drops all recorded durations.
func (m *LatencyModel) Reset() {
	if m == nil || m.dist == nil {
		return
	}
	m.dist.Reset()
}

// Summary returns the current percentiles. The zero value means no samples.
func (m *LatencyModel) Summary() LatencySummary {
	if m == nil || m.dist == nil || m.dist.Count() == 0 {
		return LatencySummary{}
	}
	return LatencySummary{
		P50:   m.dist.Percentile(50),
		P90:   m.dist.Percentile(90),
		P99:   m.dist.Percentile(99),
		Max:   m.dist.Max(),
		Count: m.dist.Count(),
	}
}
