package bench

import (
	"errors"
	"testing"
	"time"

	"github.com/soocke/voronoi-bench/domain/sampling"
	"github.com/soocke/voronoi-bench/domain/stats"
)

type controllerFixture struct {
	sched    *manualScheduler
	clock    *fakeClock
	renderer *fakeRenderer
	window   *sampling.Window
	sink     *recordingSink
	loop     *Controller
}

func newControllerFixture(policy sampling.Policy) *controllerFixture {
	f := &controllerFixture{
		sched:  newManualScheduler(),
		clock:  &fakeClock{t: time.Unix(0, 0)},
		window: sampling.NewWindow(policy),
		sink:   &recordingSink{},
	}
	f.renderer = &fakeRenderer{clock: f.clock, durations: []time.Duration{time.Millisecond}, points: 10}
	f.loop = NewController(discardLogger, f.sched, f.renderer, f.window, f.sink)
	f.loop.SetClock(f.clock.now)
	return f
}

func TestController_StartSchedulesOneTurn(t *testing.T) {
	f := newControllerFixture(sampling.PolicyFull)
	if err := f.loop.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if f.loop.State() != StateScheduled || f.loop.Pending() == 0 {
		t.Fatalf("expected scheduled with a handle, got %v handle=%d", f.loop.State(), f.loop.Pending())
	}
	if err := f.loop.Start(); !errors.Is(err, ErrLoopActive) {
		t.Fatalf("second start: expected ErrLoopActive, got %v", err)
	}
	f.sched.run(50)
	if f.renderer.renders != 50 {
		t.Fatalf("expected 50 renders, got %d", f.renderer.renders)
	}
	if f.sched.maxPending != 1 {
		t.Fatalf("expected at most one outstanding handle, saw %d", f.sched.maxPending)
	}
}

func TestController_CancelTwiceIsNoop(t *testing.T) {
	f := newControllerFixture(sampling.PolicyFull)
	f.loop.Cancel()
	if f.loop.State() != StateIdle {
		t.Fatalf("cancel from idle changed state to %v", f.loop.State())
	}
	_ = f.loop.Start()
	f.loop.Cancel()
	f.loop.Cancel()
	if f.loop.State() != StateIdle || f.loop.Pending() != 0 {
		t.Fatalf("expected idle without handle, got %v handle=%d", f.loop.State(), f.loop.Pending())
	}
	if f.sched.cancels != 1 {
		t.Fatalf("expected one scheduler cancel, got %d", f.sched.cancels)
	}
	if f.sched.run(10) != 0 {
		t.Fatalf("turn ran after cancel")
	}
}

func TestController_StaleCallbackIsDropped(t *testing.T) {
	f := newControllerFixture(sampling.PolicyFull)
	_ = f.loop.Start()
	stale := f.sched.pending[f.loop.Pending()]
	if err := f.loop.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	// A scheduler that fires a cancelled callback anyway must not cause a render.
	stale()
	if f.renderer.renders != 0 {
		t.Fatalf("stale turn rendered")
	}
	if f.loop.State() != StateScheduled {
		t.Fatalf("stale turn changed state to %v", f.loop.State())
	}
	if f.sched.run(1) != 1 || f.renderer.renders != 1 {
		t.Fatalf("fresh turn did not render")
	}
}

func TestController_ReportsStatisticsPerCycle(t *testing.T) {
	f := newControllerFixture(sampling.PolicyFull)
	f.renderer.durations = []time.Duration{4 * time.Millisecond, 6 * time.Millisecond}
	var cycles []stats.Statistics
	f.loop.AddCycleListener(func(s stats.Statistics) { cycles = append(cycles, s) })
	_ = f.loop.Start()

	// No report before the window holds a full set of post-start samples.
	f.sched.run(2*sampling.Capacity - 2)
	if len(f.sink.stats) != 0 {
		t.Fatalf("premature statistics after %d renders: %v", f.renderer.renders, f.sink.stats)
	}
	f.sched.run(1)
	if len(f.sink.stats) != 1 {
		t.Fatalf("expected one report, got %d", len(f.sink.stats))
	}
	if got := f.sink.stats[0]; got != [2]string{"5.000", "1.000"} {
		t.Fatalf("got %v, want 5.000 +/- 1.000", got)
	}
	if len(cycles) != 1 || cycles[0].Mean != 5 || cycles[0].StdDev != 1 {
		t.Fatalf("cycle listener got %+v", cycles)
	}
	f.sched.run(sampling.Capacity)
	if len(f.sink.stats) != 2 {
		t.Fatalf("expected second report after another %d renders, got %d", sampling.Capacity, len(f.sink.stats))
	}
	st := f.loop.Stats()
	if st.Cycles != 2 || st.Frames != uint64(f.renderer.renders) || st.AvgRender < 4*time.Millisecond || st.AvgRender > 6*time.Millisecond {
		t.Fatalf("unexpected loop stats %+v", st)
	}
}

func TestController_LegacyPolicyReportsEarly(t *testing.T) {
	f := newControllerFixture(sampling.PolicyLegacy)
	_ = f.loop.Start()
	f.sched.run(sampling.Capacity - 1)
	if len(f.sink.stats) != 1 {
		t.Fatalf("legacy policy expected report after %d renders, got %d", sampling.Capacity-1, len(f.sink.stats))
	}
}

func TestController_RenderFailureStopsLoop(t *testing.T) {
	f := newControllerFixture(sampling.PolicyFull)
	f.renderer.failOn = 3
	var transitions []LoopState
	f.loop.AddStateListener(func(prev, next LoopState) { transitions = append(transitions, next) })
	_ = f.loop.Start()
	ran := f.sched.run(10)
	if ran != 3 || f.renderer.renders != 3 {
		t.Fatalf("expected exactly 3 turns, ran=%d renders=%d", ran, f.renderer.renders)
	}
	if f.loop.State() != StateIdle || f.loop.Pending() != 0 {
		t.Fatalf("expected idle without handle, got %v", f.loop.State())
	}
	if len(f.sink.errs) != 1 {
		t.Fatalf("expected one reported error, got %v", f.sink.errs)
	}
	var rerr *RenderError
	if !errors.As(f.sink.errs[0], &rerr) || rerr.Frame != 3 {
		t.Fatalf("expected RenderError for frame 3, got %v", f.sink.errs[0])
	}
	if last := transitions[len(transitions)-1]; last != StateIdle {
		t.Fatalf("last transition %v, want idle", last)
	}
	if st := f.loop.Stats(); st.Failures != 1 {
		t.Fatalf("expected one failure, got %+v", st)
	}
}

func TestController_RenderPanicIsFailure(t *testing.T) {
	f := newControllerFixture(sampling.PolicyFull)
	f.renderer.panicOn = 1
	_ = f.loop.Start()
	f.sched.run(5)
	if f.renderer.renders != 1 || f.loop.State() != StateIdle {
		t.Fatalf("panic did not stop loop: renders=%d state=%v", f.renderer.renders, f.loop.State())
	}
	var rerr *RenderError
	if len(f.sink.errs) != 1 || !errors.As(f.sink.errs[0], &rerr) {
		t.Fatalf("expected RenderError, got %v", f.sink.errs)
	}
}

func TestController_CancelDuringTurnPreventsReschedule(t *testing.T) {
	f := newControllerFixture(sampling.PolicyFull)
	f.loop.AddSampleListener(func(float64) {
		if f.loop.State() != StateRunning {
			t.Errorf("sample delivered in state %v", f.loop.State())
		}
		f.loop.Cancel()
	})
	_ = f.loop.Start()
	f.sched.run(5)
	if f.renderer.renders != 1 {
		t.Fatalf("expected loop to stop after first turn, got %d renders", f.renderer.renders)
	}
	if f.loop.State() != StateIdle || len(f.sched.pending) != 0 {
		t.Fatalf("expected idle with nothing pending, got %v pending=%d", f.loop.State(), len(f.sched.pending))
	}
}

func TestController_RestartDuringTurnKeepsSingleHandle(t *testing.T) {
	f := newControllerFixture(sampling.PolicyFull)
	restarted := false
	f.loop.AddSampleListener(func(float64) {
		if !restarted {
			restarted = true
			_ = f.loop.Restart()
		}
	})
	_ = f.loop.Start()
	f.sched.run(1)
	if len(f.sched.pending) != 1 || f.loop.State() != StateScheduled {
		t.Fatalf("expected exactly one pending turn, got %d (%v)", len(f.sched.pending), f.loop.State())
	}
	f.sched.run(3)
	if f.sched.maxPending != 1 {
		t.Fatalf("outstanding handles exceeded one: %d", f.sched.maxPending)
	}
}
