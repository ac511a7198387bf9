package bench

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/soocke/voronoi-bench/domain/sampling"
)

func newTestBench(t *testing.T, initial string) (*Bench, *fakeInput, *fakeRenderer, *recordingSink, *manualScheduler) {
	t.Helper()
	input := &fakeInput{value: initial}
	sink := &recordingSink{}
	sched := newManualScheduler()
	clock := &fakeClock{t: time.Unix(0, 0)}
	r := &fakeRenderer{clock: clock, durations: []time.Duration{2 * time.Millisecond}}
	b, err := Setup(Options{
		Logger:    discardLogger,
		Input:     input,
		Sink:      sink,
		Scheduler: sched,
		Factory: func(n int) (Renderer, error) {
			r.points = n
			return r, nil
		},
		Clock: clock.now,
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := b.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return b, input, r, sink, sched
}

func TestParameterChange_UpdateBeforeNextRender(t *testing.T) {
	b, input, r, _, sched := newTestBench(t, "10")
	sched.run(3)
	if b.Loop.State() != StateScheduled {
		t.Fatalf("expected scheduled loop, got %v", b.Loop.State())
	}

	input.set("25")

	sched.run(3)
	updateAt := -1
	for i, e := range r.events {
		if e == "update:25" {
			updateAt = i
		}
	}
	if updateAt < 0 {
		t.Fatalf("update not called: %v", r.events)
	}
	after := r.events[updateAt+1:]
	if len(after) != 3 {
		t.Fatalf("expected 3 renders after update, got %v", after)
	}
	for _, e := range after {
		if e != "render:25" {
			t.Fatalf("render with stale configuration after update: %v", r.events)
		}
	}
	if b.Params.PointCount() != 25 {
		t.Fatalf("point count %d, want 25", b.Params.PointCount())
	}
	if sched.maxPending != 1 {
		t.Fatalf("outstanding handles exceeded one: %d", sched.maxPending)
	}
}

func TestParameterChange_ResetsWindowAndStatus(t *testing.T) {
	b, input, _, sink, sched := newTestBench(t, "10")
	sched.run(150)
	input.set("40")
	if b.Window.Len() != 0 || b.Window.Cursor() != 0 {
		t.Fatalf("window not reset: len=%d cursor=%d", b.Window.Len(), b.Window.Cursor())
	}
	if got := sink.status[len(sink.status)-1]; got != CalculatingText {
		t.Fatalf("status %q, want %q", got, CalculatingText)
	}
	if got := sink.labels[len(sink.labels)-1]; got != 40 {
		t.Fatalf("label %d, want 40", got)
	}
	// Fewer than a full window since the reset must not report.
	sched.run(2*sampling.Capacity - 2)
	if len(sink.stats) != 0 {
		t.Fatalf("premature statistics after reset: %v", sink.stats)
	}
}

func TestParameterChange_InvalidInputIsRejected(t *testing.T) {
	for _, raw := range []string{"-3", "0", "abc", "", "2.5"} {
		t.Run(raw, func(t *testing.T) {
			b, input, r, sink, sched := newTestBench(t, "10")
			sched.run(20)
			before := b.Window.Snapshot()
			cursor := b.Window.Cursor()
			events := len(r.events)

			input.set(raw)

			if b.Params.PointCount() != 10 || r.points != 10 {
				t.Fatalf("configuration changed to %d/%d", b.Params.PointCount(), r.points)
			}
			if len(r.events) != events {
				t.Fatalf("renderer touched by invalid input: %v", r.events[events:])
			}
			after := b.Window.Snapshot()
			for i := range before {
				if before[i] != after[i] {
					t.Fatalf("window slot %d changed", i)
				}
			}
			if b.Window.Cursor() != cursor {
				t.Fatalf("window cursor moved")
			}
			var perr *InvalidParameterError
			if len(sink.errs) != 1 || !errors.As(sink.errs[0], &perr) {
				t.Fatalf("expected InvalidParameterError, got %v", sink.errs)
			}
			if b.Loop.State() != StateScheduled {
				t.Fatalf("running loop disturbed: %v", b.Loop.State())
			}
			if sched.run(1) != 1 || r.events[len(r.events)-1] != "render:10" {
				t.Fatalf("loop did not continue with prior configuration")
			}
		})
	}
}

func TestParameterChange_RestartsStoppedLoop(t *testing.T) {
	b, input, r, _, sched := newTestBench(t, "10")
	r.failOn = 2
	sched.run(5)
	if b.Loop.State() != StateIdle {
		t.Fatalf("expected loop stopped after failure, got %v", b.Loop.State())
	}
	r.failOn = 0
	input.set("12")
	if b.Loop.State() != StateScheduled {
		t.Fatalf("valid change should restart loop, got %v", b.Loop.State())
	}
}

func TestParameterChange_UpdateFailureStopsLoop(t *testing.T) {
	b, input, r, sink, sched := newTestBench(t, "10")
	sched.run(2)
	r.updateErr = errors.New("out of memory")
	var seen []error
	b.Params.AddListener(func(n int, err error) { seen = append(seen, err) })
	input.set("99")
	if b.Loop.State() != StateIdle || len(sched.pending) != 0 {
		t.Fatalf("loop still active after failed update: %v", b.Loop.State())
	}
	var uerr *UpdateError
	if len(sink.errs) != 1 || !errors.As(sink.errs[0], &uerr) || uerr.PointCount != 99 {
		t.Fatalf("expected UpdateError, got %v", sink.errs)
	}
	if b.Params.PointCount() != 10 {
		t.Fatalf("point count advanced to %d", b.Params.PointCount())
	}
	if got := sink.labels[len(sink.labels)-1]; got != 10 {
		t.Fatalf("label left at %d after failed update, want 10", got)
	}
	if len(seen) != 1 || seen[0] == nil {
		t.Fatalf("listener not told about failure: %v", seen)
	}
}

func TestParsePointCount(t *testing.T) {
	if n, err := ParsePointCount(" 42 ", 0); err != nil || n != 42 {
		t.Fatalf("got %d, %v", n, err)
	}
	cases := map[string]string{
		"":     "empty",
		"x1":   "not a number",
		"1.5":  "not an integer",
		"-7":   "positive",
		"5000": "maximum",
	}
	for raw, reason := range cases {
		_, err := ParsePointCount(raw, 1000)
		var perr *InvalidParameterError
		if !errors.As(err, &perr) || !strings.Contains(perr.Reason, reason) {
			t.Fatalf("ParsePointCount(%q) = %v, want reason containing %q", raw, err, reason)
		}
	}
}
