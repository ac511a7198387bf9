package presenter

import "time"

// Loop aggregates feature presenters and drives periodic UI updates.
//
// It runs on its own TclAfter tick, independent of the render loop's
// schedule. The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	State    *StatePresenter
	Frame    *FramePresenter
	Schedule func()
	now      func() time.Time
}

func NewLoop(sess *SessionPresenter, state *StatePresenter, frame *FramePresenter, schedule func()) *Loop {
	return &Loop{Session: sess, State: state, Frame: frame, Schedule: schedule, now: time.Now}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.now != nil {
		now = l.now()
	}
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Frame != nil {
		l.Frame.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
