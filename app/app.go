package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/voronoi-bench/config"
	"github.com/soocke/voronoi-bench/debug"
	"github.com/soocke/voronoi-bench/metrics"
	"github.com/soocke/voronoi-bench/ui/presenter"
	"github.com/soocke/voronoi-bench/ui/theme"
)

const (
	uiTick = 100 * time.Millisecond
)

type app struct {
	c         *AppContainer
	ctx       context.Context
	cancel    context.CancelFunc
	uiAfterID string
	closed    bool
}

// NewApp prepares the main window. ctx ending closes the window.
func NewApp(ctx context.Context, title string, width, height int, cfg *config.Config, logger *slog.Logger) *app {
	a := &app{c: BuildContainer(cfg, logger)}
	a.ctx, a.cancel = context.WithCancel(ctx)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the window, wires and starts the benchmark and then blocks in
// the Tk event loop until the window closes. A setup failure leaves the window
// open with the error on the status line and no loop running.
func (a *app) Start() error {
	c := a.c
	c.RootView.Build(c.Config.PointCount, a.exitHandler, func() { theme.ToggleDark() })

	b, err := c.WireBench()
	if err != nil {
		c.Logger.Error("benchmark setup failed", "error", err)
		c.UI.SetStatusText(presenter.ErrorText(err))
		App.Wait()
		return err
	}

	if _, _, err := metrics.Expose(a.ctx, b, c.Config.MetricsAddr, c.Logger); err != nil {
		c.Logger.Warn("metrics disabled", "error", err)
	}
	if c.Config.Debug {
		debug.Start(a.ctx, c.Logger)
	}

	c.Loop = presenter.NewLoop(c.SessionPresenter, c.StatePresenter, c.FramePresenter, a.scheduleUpdate)
	if err := b.Start(); err != nil {
		return err
	}
	a.scheduleUpdate()

	App.Wait()
	return nil
}

// scheduleUpdate queues the next UI tick on Tk's event loop thread.
func (a *app) scheduleUpdate() {
	if a.closed {
		return
	}
	if a.ctx.Err() != nil {
		a.exitHandler()
		return
	}
	a.uiAfterID = TclAfter(uiTick, func() { a.c.Loop.Tick() })
}

func (a *app) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	if a.c.Bench != nil {
		a.c.Bench.Stop()
	}
	a.c.Scheduler.CancelAll()
	if a.uiAfterID != "" {
		TclAfterCancel(a.uiAfterID)
	}
	a.cancel()
	a.c.Logger.Info("window closed")
	Destroy(App)
}
