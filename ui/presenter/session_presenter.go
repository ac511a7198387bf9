package presenter

import (
	"time"

	"github.com/soocke/voronoi-bench/domain/bench"
	"github.com/soocke/voronoi-bench/ui/model"
)

// LoopStateSource reports the loop's current state.
type LoopStateSource interface{ State() bench.LoopState }

// SessionView displays run and total measuring durations.
type SessionView interface {
	SetSession(run, total time.Duration)
}

// SessionPresenter advances the run model from the loop state and pushes
// durations to the view.
type SessionPresenter struct {
	run  *model.RunModel
	loop LoopStateSource
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(run *model.RunModel, loop LoopStateSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{run: run, loop: loop, view: view}
}

// Tick samples the loop state at now and refreshes the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.run == nil || p.loop == nil || p.view == nil {
		return
	}
	p.run.OnTick(p.loop.State() != bench.StateIdle, now)
	r, t := p.run.Values()
	p.view.SetSession(r, t)
}
