package metrics

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/soocke/voronoi-bench/domain/bench"
)

// Expose registers a Collector for b on a fresh registry alongside the Go
// runtime and process collectors. When addr is non-empty the registry is
// served on addr until ctx is done.
func Expose(ctx context.Context, b *bench.Bench, addr string, logger *slog.Logger) (*Collector, *prometheus.Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, nil, err
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, nil, err
	}
	c := NewCollector()
	if err := c.Register(reg); err != nil {
		return nil, nil, err
	}
	c.Attach(b)

	if addr != "" {
		go func() {
			if err := Serve(ctx, addr, reg, logger); err != nil {
				logger.Error("metrics server failed", "addr", addr, "error", err)
			}
		}()
	}
	return c, reg, nil
}
