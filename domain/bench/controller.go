package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/voronoi-bench/domain/sampling"
	"github.com/soocke/voronoi-bench/domain/stats"
)

// LoopStats summarises controller activity for instrumentation.
type LoopStats struct {
	Frames     uint64
	Cycles     uint64
	Failures   uint64
	LastRender time.Duration
	AvgRender  time.Duration
	LastCycle  stats.Statistics
}

// Controller drives the measured render loop. It owns at most one pending
// scheduler handle and must only be called from the scheduler's thread.
type Controller struct {
	logger   *slog.Logger
	sched    Scheduler
	renderer Renderer
	window   *sampling.Window
	sink     Sink
	now      func() time.Time

	state  LoopState
	handle Handle
	// gen is bumped on every cancel; a turn started under an older
	// generation never reschedules.
	gen uint64

	frames      uint64
	cycles      uint64
	failures    uint64
	renderNanos uint64
	lastRender  time.Duration
	lastCycle   stats.Statistics

	stateListeners  []StateListener
	sampleListeners []SampleListener
	cycleListeners  []CycleListener
}

// NewController returns an idle controller.
func NewController(logger *slog.Logger, sched Scheduler, renderer Renderer, window *sampling.Window, sink Sink) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		logger:   logger,
		sched:    sched,
		renderer: renderer,
		window:   window,
		sink:     sink,
		now:      time.Now,
	}
}

// SetClock replaces the clock used to time render calls.
func (c *Controller) SetClock(now func() time.Time) {
	if now != nil {
		c.now = now
	}
}

// AddStateListener registers l for every state transition.
func (c *Controller) AddStateListener(l StateListener) {
	c.stateListeners = append(c.stateListeners, l)
}

// AddSampleListener registers l for every successfully measured render.
func (c *Controller) AddSampleListener(l SampleListener) {
	c.sampleListeners = append(c.sampleListeners, l)
}

// AddCycleListener registers l for every completed window.
func (c *Controller) AddCycleListener(l CycleListener) {
	c.cycleListeners = append(c.cycleListeners, l)
}

// State returns the current loop state.
func (c *Controller) State() LoopState { return c.state }

// Pending returns the outstanding scheduler handle, or zero.
func (c *Controller) Pending() Handle { return c.handle }

// Start schedules the first turn. It fails with ErrLoopActive unless idle.
func (c *Controller) Start() error {
	if c.state != StateIdle {
		return ErrLoopActive
	}
	c.schedule()
	return nil
}

// Cancel drops any pending turn and returns to idle. A turn currently
// running finishes its render but will not reschedule. Safe in any state.
func (c *Controller) Cancel() {
	if c.handle != 0 {
		c.sched.Cancel(c.handle)
		c.handle = 0
	}
	if c.state == StateIdle {
		return
	}
	c.gen++
	c.transition(StateIdle)
}

// Restart cancels and starts again, so no turn scheduled before the call
// can run after it.
func (c *Controller) Restart() error {
	c.Cancel()
	return c.Start()
}

// Stats returns a snapshot of loop counters.
func (c *Controller) Stats() LoopStats {
	var avg time.Duration
	if ok := c.frames - c.failures; ok > 0 {
		avg = time.Duration(c.renderNanos / ok)
	}
	return LoopStats{
		Frames:     c.frames,
		Cycles:     c.cycles,
		Failures:   c.failures,
		LastRender: c.lastRender,
		AvgRender:  avg,
		LastCycle:  c.lastCycle,
	}
}

func (c *Controller) schedule() {
	gen := c.gen
	c.handle = c.sched.Schedule(func() { c.turn(gen) })
	c.transition(StateScheduled)
}

func (c *Controller) turn(gen uint64) {
	if gen != c.gen || c.state != StateScheduled {
		c.logger.Debug("stale render turn dropped", "generation", gen, "current", c.gen)
		return
	}
	c.handle = 0
	c.transition(StateRunning)

	elapsed, err := c.measure()
	c.frames++
	if err != nil {
		c.fail(gen, err)
		return
	}
	c.lastRender = elapsed
	c.renderNanos += uint64(elapsed.Nanoseconds())

	ms := float64(elapsed) / float64(time.Millisecond)
	complete := c.window.Record(ms)
	var st stats.Statistics
	if complete {
		st = stats.Compute(c.window.Snapshot())
	}
	for _, l := range c.sampleListeners {
		l(ms)
	}
	if gen != c.gen {
		return
	}
	if complete {
		c.cycles++
		c.lastCycle = st
		c.logger.Debug("render cycle complete", "cycle", c.cycles, "mean_ms", st.Mean, "stddev_ms", st.StdDev)
		c.sink.SetStatistics(st.MeanText(), st.StdDevText())
		for _, l := range c.cycleListeners {
			l(st)
		}
		if gen != c.gen {
			return
		}
	}
	c.schedule()
}

// measure times exactly one Render call. Panics are converted to errors.
func (c *Controller) measure() (elapsed time.Duration, err error) {
	start := c.now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderer panic: %v", r)
		}
		elapsed = c.now().Sub(start)
	}()
	err = c.renderer.Render()
	return elapsed, err
}

func (c *Controller) fail(gen uint64, cause error) {
	c.failures++
	rerr := &RenderError{Frame: c.frames, Err: cause}
	c.logger.Error("render failed, loop stopped", "frame", c.frames, "error", cause)
	c.sink.SetError(rerr)
	if gen == c.gen {
		c.gen++
		c.transition(StateIdle)
	}
}

func (c *Controller) transition(next LoopState) {
	prev := c.state
	if prev == next {
		return
	}
	c.state = next
	for _, l := range c.stateListeners {
		l(prev, next)
	}
}
