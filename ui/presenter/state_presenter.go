package presenter

import (
	"time"

	"github.com/soocke/voronoi-bench/domain/bench"
)

// StateView sets the loop state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives loop state transitions and reflects the latest one
// on the next Tick. A turn passes through Running and back to Scheduled many
// times per tick, so only the final state is shown.
type StatePresenter struct {
	view    StateView
	shown   bool
	latest  bench.LoopState
	pending []bench.LoopState
}

func NewStatePresenter(view StateView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState queues a transition. It matches bench.StateListener.
func (p *StatePresenter) OnState(_, next bench.LoopState) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick reflects the most recent queued state and clears the queue.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil || len(p.pending) == 0 {
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	if p.shown && last == p.latest {
		return
	}
	p.shown = true
	p.latest = last
	p.view.SetStateLabel(StateText(last))
}

// StateText renders the state label. Scheduled and Running both read as
// measuring since the label cannot resolve individual turns.
func StateText(s bench.LoopState) string {
	if s == bench.StateIdle {
		return "Loop: stopped"
	}
	return "Loop: measuring"
}
