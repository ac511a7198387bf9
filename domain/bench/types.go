package bench

import (
	"github.com/soocke/voronoi-bench/domain/stats"
)

// Renderer is the external rendering engine being measured.
type Renderer interface {
	// Update reconfigures the workload to pointCount sites.
	Update(pointCount int) error
	// Render performs one frame. It must return in bounded time.
	Render() error
}

// RendererFactory constructs a Renderer for the initial point count.
type RendererFactory func(pointCount int) (Renderer, error)

// Sink receives status and statistics text for display. It is write-only.
type Sink interface {
	SetStatusText(text string)
	SetStatistics(meanText, stdDevText string)
	SetPointCountLabel(n int)
	SetError(err error)
}

// InputSource delivers raw point-count values from the user.
type InputSource interface {
	Value() string
	OnChange(func(raw string))
}

// Handle identifies one pending scheduling request. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks on the single cooperative loop thread.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

// LoopState enumerates the controller states.
type LoopState int

const (
	StateIdle LoopState = iota
	StateScheduled
	StateRunning
)

func (s LoopState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// StateListener is called on each controller state transition.
type StateListener func(prev, next LoopState)

// SampleListener receives every measured render duration in milliseconds.
type SampleListener func(elapsedMs float64)

// CycleListener receives full precision statistics for each completed window cycle.
type CycleListener func(s stats.Statistics)

// ChangeListener observes parameter changes; err is non-nil for rejected input.
type ChangeListener func(pointCount int, err error)

// CalculatingText is shown while a fresh window fills after a change.
const CalculatingText = "Render Time: ...Calculating"
