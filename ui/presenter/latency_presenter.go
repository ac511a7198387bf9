package presenter

import (
	"fmt"

	"github.com/soocke/voronoi-bench/domain/stats"
	"github.com/soocke/voronoi-bench/ui/model"
)

// PercentileView displays the latency percentile line.
type PercentileView interface{ SetPercentileText(string) }

// LatencyPresenter accumulates every sample for the current point count and
// refreshes the percentile line once per completed window.
type LatencyPresenter struct {
	model *model.LatencyModel
	view  PercentileView
}

func NewLatencyPresenter(m *model.LatencyModel, view PercentileView) *LatencyPresenter {
	return &LatencyPresenter{model: m, view: view}
}

// OnSample matches bench.SampleListener.
func (p *LatencyPresenter) OnSample(ms float64) {
	if p == nil {
		return
	}
	p.model.Observe(ms)
}

// OnCycle matches bench.CycleListener.
func (p *LatencyPresenter) OnCycle(stats.Statistics) {
	if p == nil || p.view == nil {
		return
	}
	p.view.SetPercentileText(PercentileText(p.model.Summary()))
}

// OnChange matches bench.ChangeListener. Accepted changes start a new
// distribution; rejected ones leave it alone.
func (p *LatencyPresenter) OnChange(_ int, err error) {
	if p == nil || err != nil {
		return
	}
	p.model.Reset()
	if p.view != nil {
		p.view.SetPercentileText(PercentileText(model.LatencySummary{}))
	}
}

// PercentileText renders a summary for display.
func PercentileText(s model.LatencySummary) string {
	if s.Count == 0 {
		return "Percentiles: -"
	}
	return fmt.Sprintf("p50 %s ms  p90 %s ms  p99 %s ms  max %s ms  (n=%d)",
		stats.FormatPrecision(s.P50, stats.DisplayPrecision),
		stats.FormatPrecision(s.P90, stats.DisplayPrecision),
		stats.FormatPrecision(s.P99, stats.DisplayPrecision),
		stats.FormatPrecision(s.Max, stats.DisplayPrecision),
		s.Count)
}
