package bench

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	next       Handle
	pending    map[Handle]func()
	order      []Handle
	maxPending int
	cancels    int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[Handle]func())}
}

func (s *manualScheduler) Schedule(fn func()) Handle {
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	if len(s.pending) > s.maxPending {
		s.maxPending = len(s.pending)
	}
	return s.next
}

func (s *manualScheduler) Cancel(h Handle) {
	if _, ok := s.pending[h]; ok {
		s.cancels++
	}
	delete(s.pending, h)
}

// step fires the oldest pending callback and reports whether one ran.
func (s *manualScheduler) step() bool {
	for len(s.order) > 0 {
		h := s.order[0]
		s.order = s.order[1:]
		if fn, ok := s.pending[h]; ok {
			delete(s.pending, h)
			fn()
			return true
		}
	}
	return false
}

// run fires up to n callbacks and returns how many ran.
func (s *manualScheduler) run(n int) int {
	ran := 0
	for ran < n && s.step() {
		ran++
	}
	return ran
}

// fakeClock is advanced by fakeRenderer to simulate render durations.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

// fakeRenderer records calls and the configuration each render ran under.
type fakeRenderer struct {
	clock     *fakeClock
	durations []time.Duration // cycled per render
	points    int
	events    []string
	renders   int
	failOn    int // 1-based render call that fails; 0 never
	panicOn   int
	updateErr error
}

func (r *fakeRenderer) Update(n int) error {
	r.events = append(r.events, fmt.Sprintf("update:%d", n))
	if r.updateErr != nil {
		return r.updateErr
	}
	r.points = n
	return nil
}

func (r *fakeRenderer) Render() error {
	r.renders++
	r.events = append(r.events, fmt.Sprintf("render:%d", r.points))
	if r.clock != nil && len(r.durations) > 0 {
		r.clock.t = r.clock.t.Add(r.durations[(r.renders-1)%len(r.durations)])
	}
	if r.panicOn == r.renders {
		panic("boom")
	}
	if r.failOn == r.renders {
		return errors.New("device lost")
	}
	return nil
}

// recordingSink captures everything pushed for display.
type recordingSink struct {
	status []string
	stats  [][2]string
	labels []int
	errs   []error
}

func (s *recordingSink) SetStatusText(text string) { s.status = append(s.status, text) }
func (s *recordingSink) SetStatistics(mean, stddev string) {
	s.stats = append(s.stats, [2]string{mean, stddev})
}
func (s *recordingSink) SetPointCountLabel(n int) { s.labels = append(s.labels, n) }
func (s *recordingSink) SetError(err error)       { s.errs = append(s.errs, err) }

// fakeInput is an InputSource whose value the test sets.
type fakeInput struct {
	value    string
	handlers []func(string)
}

func (i *fakeInput) Value() string                { return i.value }
func (i *fakeInput) OnChange(fn func(raw string)) { i.handlers = append(i.handlers, fn) }
func (i *fakeInput) set(v string) {
	i.value = v
	for _, h := range i.handlers {
		h(v)
	}
}
