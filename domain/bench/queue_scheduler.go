package bench

import (
	"context"
	"time"
)

type queuedTurn struct {
	h   Handle
	fn  func()
	due time.Time
}

// QueueScheduler is a cooperative FIFO scheduler for running the loop
// without a GUI event loop. Schedule and Cancel must be called from the
// goroutine running Run, or before Run starts.
type QueueScheduler struct {
	interval time.Duration
	next     Handle
	queue    []queuedTurn
}

// NewQueueScheduler returns a scheduler that delays each callback by interval.
func NewQueueScheduler(interval time.Duration) *QueueScheduler {
	if interval < 0 {
		interval = 0
	}
	return &QueueScheduler{interval: interval}
}

func (q *QueueScheduler) Schedule(fn func()) Handle {
	q.next++
	q.queue = append(q.queue, queuedTurn{h: q.next, fn: fn, due: time.Now().Add(q.interval)})
	return q.next
}

func (q *QueueScheduler) Cancel(h Handle) {
	for i, e := range q.queue {
		if e.h == h {
			q.queue = append(q.queue[:i], q.queue[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (q *QueueScheduler) Pending() int { return len(q.queue) }

// Run executes queued callbacks in order until the queue drains or ctx is done.
func (q *QueueScheduler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(q.queue) == 0 {
			return nil
		}
		e := q.queue[0]
		if wait := time.Until(e.due); wait > 0 {
			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
		q.queue = q.queue[1:]
		e.fn()
	}
}
