package view

import (
	"time"

	"github.com/soocke/voronoi-bench/domain/bench"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TkScheduler runs render turns on the Tk event loop via TclAfter, so turns
// and input callbacks share one thread.
type TkScheduler struct {
	interval time.Duration
	next     bench.Handle
	afterIDs map[bench.Handle]string
}

var _ bench.Scheduler = (*TkScheduler)(nil)

// NewTkScheduler returns a scheduler that delays each turn by interval.
func NewTkScheduler(interval time.Duration) *TkScheduler {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return &TkScheduler{interval: interval, afterIDs: make(map[bench.Handle]string)}
}

func (s *TkScheduler) Schedule(fn func()) bench.Handle {
	s.next++
	h := s.next
	s.afterIDs[h] = TclAfter(s.interval, func() {
		delete(s.afterIDs, h)
		fn()
	})
	return h
}

func (s *TkScheduler) Cancel(h bench.Handle) {
	id, ok := s.afterIDs[h]
	if !ok {
		return
	}
	delete(s.afterIDs, h)
	TclAfterCancel(id)
}

// CancelAll drops every outstanding callback. Used on window close.
func (s *TkScheduler) CancelAll() {
	for h, id := range s.afterIDs {
		delete(s.afterIDs, h)
		TclAfterCancel(id)
	}
}
