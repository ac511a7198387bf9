package stats

import (
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	// Samples are tracked in microseconds between 1µs and one minute.
	minTrackableMicros = 1
	maxTrackableMicros = 60_000_000
	significantFigures = 3
)

// Distribution tracks the latency distribution of every sample recorded since
// the last Reset. Unlike a Window it is not bounded to the most recent
// samples, so it answers percentile queries for a whole benchmark run.
type Distribution struct {
	h       *hdrhistogram.Histogram
	dropped int64
}

// NewDistribution returns an empty distribution.
func NewDistribution() *Distribution {
	return &Distribution{h: hdrhistogram.New(minTrackableMicros, maxTrackableMicros, significantFigures)}
}

// Record adds one sample in milliseconds. Samples outside the trackable range
// are clamped; negative or non-finite samples are counted as dropped.
func (d *Distribution) Record(ms float64) {
	if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		d.dropped++
		return
	}
	us := int64(math.Round(ms * 1000))
	if us < minTrackableMicros {
		us = minTrackableMicros
	}
	if us > maxTrackableMicros {
		us = maxTrackableMicros
	}
	if err := d.h.RecordValue(us); err != nil {
		d.dropped++
	}
}

// Percentile returns the latency in milliseconds at quantile q (0-100).
func (d *Distribution) Percentile(q float64) float64 {
	if d.h.TotalCount() == 0 {
		return 0
	}
	return float64(d.h.ValueAtQuantile(q)) / 1000
}

// Max returns the largest recorded latency in milliseconds.
func (d *Distribution) Max() float64 {
	if d.h.TotalCount() == 0 {
		return 0
	}
	return float64(d.h.Max()) / 1000
}

// Count returns the number of recorded samples.
func (d *Distribution) Count() int64 { return d.h.TotalCount() }

// Dropped returns the number of samples that could not be recorded.
func (d *Distribution) Dropped() int64 { return d.dropped }

// Reset discards all recorded samples.
func (d *Distribution) Reset() {
	d.h.Reset()
	d.dropped = 0
}
