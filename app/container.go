package app

import (
	"log/slog"
	"time"

	"github.com/soocke/voronoi-bench/config"
	"github.com/soocke/voronoi-bench/domain/bench"
	"github.com/soocke/voronoi-bench/domain/sampling"
	"github.com/soocke/voronoi-bench/render/globe"
	"github.com/soocke/voronoi-bench/ui/model"
	"github.com/soocke/voronoi-bench/ui/presenter"
	"github.com/soocke/voronoi-bench/ui/view"
)

// AppContainer assembles models, presenters, the root view and the benchmark.
type AppContainer struct {
	Config    *config.Config
	Logger    *slog.Logger
	RootView  *view.RootView
	UI        view.UI
	Scheduler *view.TkScheduler

	// Models
	Run     *model.RunModel
	Latency *model.LatencyModel
	Frames  *model.FrameModel

	// Presenters
	StatsPresenter   *presenter.StatsPresenter
	StatePresenter   *presenter.StatePresenter
	SessionPresenter *presenter.SessionPresenter
	LatencyPresenter *presenter.LatencyPresenter
	FramePresenter   *presenter.FramePresenter
	Loop             *presenter.Loop

	Bench *bench.Bench
}

// BuildContainer constructs models, the view and the presenters that do not
// depend on the benchmark. The view is built later by the app.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Run = model.NewRunModel()
	c.Latency = model.NewLatencyModel()
	c.Frames = model.NewFrameModel()

	c.RootView = view.NewRootView(logger)
	c.UI = c.RootView
	c.Scheduler = view.NewTkScheduler(time.Duration(cfg.FrameIntervalMs) * time.Millisecond)

	c.StatsPresenter = presenter.NewStatsPresenter(c.UI, logger)
	c.StatePresenter = presenter.NewStatePresenter(c.UI)
	c.LatencyPresenter = presenter.NewLatencyPresenter(c.Latency, c.UI)
	c.FramePresenter = presenter.NewFramePresenter(c.Frames, c.UI)
	return c
}

// WireBench runs benchmark setup against the built view and subscribes the
// presenters. It must be called after RootView.Build.
func (c *AppContainer) WireBench() (*bench.Bench, error) {
	policy, err := sampling.ParsePolicy(c.Config.CyclePolicy)
	if err != nil {
		return nil, err
	}
	b, err := bench.Setup(bench.Options{
		Logger:    c.Logger,
		Input:     c.RootView.Input,
		Sink:      c.StatsPresenter,
		Scheduler: c.Scheduler,
		Factory: globe.Factory(globe.Options{
			Width:       c.Config.CanvasWidth,
			Height:      c.Config.CanvasHeight,
			MsPerDegree: c.Config.RotationMsPerDegree,
			Seed:        c.Config.Seed,
			Display:     c.FramePresenter.Display,
		}),
		Policy:        policy,
		MaxPointCount: c.Config.MaxPointCount,
	})
	if err != nil {
		return nil, err
	}
	b.Loop.AddStateListener(c.StatePresenter.OnState)
	b.Loop.AddSampleListener(c.LatencyPresenter.OnSample)
	b.Loop.AddCycleListener(c.LatencyPresenter.OnCycle)
	b.Params.AddListener(c.LatencyPresenter.OnChange)
	b.Params.AddListener(func(_ int, err error) {
		if err == nil {
			c.RootView.ResetFrame()
		}
	})

	c.SessionPresenter = presenter.NewSessionPresenter(c.Run, b.Loop, c.UI)
	c.Bench = b
	return b, nil
}
