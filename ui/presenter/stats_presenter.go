package presenter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/soocke/voronoi-bench/domain/bench"
)

// StatsView displays the benchmark's text outputs.
type StatsView interface {
	SetStatusText(string)
	SetPerfText(string)
	SetPointCountText(string)
}

// StatsPresenter formats benchmark results for a StatsView. It is the GUI
// binding of bench.Sink.
type StatsPresenter struct {
	view   StatsView
	logger *slog.Logger
}

var _ bench.Sink = (*StatsPresenter)(nil)

func NewStatsPresenter(view StatsView, logger *slog.Logger) *StatsPresenter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StatsPresenter{view: view, logger: logger}
}

// SetStatusText shows text on the status line.
func (p *StatsPresenter) SetStatusText(text string) {
	if p == nil || p.view == nil {
		return
	}
	p.view.SetStatusText(text)
}

// SetStatistics shows a completed window's mean and standard deviation.
func (p *StatsPresenter) SetStatistics(mean, stddev string) {
	if p == nil || p.view == nil {
		return
	}
	text := FormatStatistics(mean, stddev)
	p.view.SetPerfText(text)
	p.view.SetStatusText(text)
}

// SetPointCountLabel shows the configured point count.
func (p *StatsPresenter) SetPointCountLabel(n int) {
	if p == nil || p.view == nil {
		return
	}
	p.view.SetPointCountText(FormatPointCount(n))
}

// SetError puts a short description of err on the status line.
func (p *StatsPresenter) SetError(err error) {
	if p == nil || p.view == nil || err == nil {
		return
	}
	p.logger.Debug("status error", "error", err)
	p.view.SetStatusText(ErrorText(err))
}

// FormatStatistics renders the statistics line.
func FormatStatistics(mean, stddev string) string {
	return fmt.Sprintf("Mean Render Time: %s +/- %s ms", mean, stddev)
}

// FormatPointCount renders the point count label.
func FormatPointCount(n int) string {
	return fmt.Sprintf("The number of points on the sphere: %d", n)
}

// ErrorText maps benchmark errors onto status line text.
func ErrorText(err error) string {
	var (
		invalid *bench.InvalidParameterError
		render  *bench.RenderError
		update  *bench.UpdateError
	)
	switch {
	case errors.As(err, &invalid):
		return fmt.Sprintf("Invalid point count %q: %s", invalid.Raw, invalid.Reason)
	case errors.As(err, &update):
		return fmt.Sprintf("Update to %d points failed: %v", update.PointCount, update.Err)
	case errors.As(err, &render):
		return fmt.Sprintf("Rendering stopped: %v", render.Err)
	default:
		return "Error: " + err.Error()
	}
}
