// Package bench measures render latency in a continuously rescheduled loop.
//
// All methods run on one cooperative thread: the Scheduler invokes turns on
// the same thread that delivers input changes, so a change and a pending turn
// never interleave. Restart orders cancel before schedule, which is what keeps
// a frame scheduled under an old configuration from ever running.
package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/voronoi-bench/domain/sampling"
)

// Options configures Setup. Input, Sink, Factory and Scheduler are required.
type Options struct {
	Logger        *slog.Logger
	Input         InputSource
	Sink          Sink
	Factory       RendererFactory
	Scheduler     Scheduler
	Policy        sampling.Policy
	MaxPointCount int
	Clock         func() time.Time
}

// Bench bundles the wired components of one benchmark instance.
type Bench struct {
	Window   *sampling.Window
	Renderer Renderer
	Loop     *Controller
	Params   *ParameterHandler

	input  InputSource
	sink   Sink
	logger *slog.Logger
}

// Setup validates collaborators and constructs the renderer. It does not
// start the loop; any failure is an *InitializationError.
func Setup(opts Options) (*Bench, error) {
	switch {
	case opts.Input == nil:
		return nil, &InitializationError{Component: "input source"}
	case opts.Sink == nil:
		return nil, &InitializationError{Component: "presentation sink"}
	case opts.Factory == nil:
		return nil, &InitializationError{Component: "renderer factory"}
	case opts.Scheduler == nil:
		return nil, &InitializationError{Component: "scheduler"}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	n, err := ParsePointCount(opts.Input.Value(), opts.MaxPointCount)
	if err != nil {
		return nil, &InitializationError{Component: "input source", Err: err}
	}
	r, err := construct(opts.Factory, n)
	if err != nil {
		return nil, &InitializationError{Component: "renderer", Err: err}
	}

	window := sampling.NewWindow(opts.Policy)
	loop := NewController(logger, opts.Scheduler, r, window, opts.Sink)
	if opts.Clock != nil {
		loop.SetClock(opts.Clock)
	}
	params := NewParameterHandler(logger, window, r, loop, opts.Sink, n, opts.MaxPointCount)
	return &Bench{
		Window:   window,
		Renderer: r,
		Loop:     loop,
		Params:   params,
		input:    opts.Input,
		sink:     opts.Sink,
		logger:   logger,
	}, nil
}

// Start publishes the initial state, subscribes to input changes and
// schedules the first turn.
func (b *Bench) Start() error {
	b.sink.SetPointCountLabel(b.Params.PointCount())
	b.sink.SetStatusText(CalculatingText)
	b.input.OnChange(func(raw string) { _ = b.Params.Handle(raw) })
	b.logger.Info("benchmark started", "point_count", b.Params.PointCount(), "policy", b.Window.Policy().String())
	return b.Loop.Start()
}

// Stop cancels the loop.
func (b *Bench) Stop() { b.Loop.Cancel() }

func construct(f RendererFactory, n int) (r Renderer, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("renderer factory panic: %v", p)
		}
	}()
	r, err = f(n)
	if err == nil && r == nil {
		err = fmt.Errorf("renderer factory returned nil")
	}
	return r, err
}
