package sampling

import "fmt"

// Capacity is the number of render samples kept in a Window.
const Capacity = 200

// Policy decides when a Window reports a completed cycle.
type Policy int

const (
	// PolicyFull reports a cycle only once every slot holds a sample
	// recorded since the last Reset.
	PolicyFull Policy = iota
	// PolicyLegacy reports a cycle whenever the cursor lands on the last
	// slot, even if some slots were zeroed by a recent Reset.
	PolicyLegacy
)

func (p Policy) String() string {
	switch p {
	case PolicyFull:
		return "full"
	case PolicyLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a config value onto a Policy. The empty string selects PolicyFull.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "full":
		return PolicyFull, nil
	case "legacy":
		return PolicyLegacy, nil
	default:
		return PolicyFull, fmt.Errorf("unknown cycle policy %q", s)
	}
}

// Window is a fixed-size ring buffer of render durations in milliseconds.
// Each Window owns its buffer; instances never share state.
type Window struct {
	data   []float64
	pos    int
	count  int
	policy Policy
}

// NewWindow creates an empty window holding Capacity samples.
func NewWindow(policy Policy) *Window {
	return &Window{
		data:   make([]float64, Capacity),
		policy: policy,
	}
}

// Record stores a sample at the cursor and advances it. It reports whether
// a cycle completed with this sample.
func (w *Window) Record(elapsedMs float64) bool {
	w.data[w.pos] = elapsedMs
	w.pos = (w.pos + 1) % Capacity
	if w.count < Capacity {
		w.count++
	}
	if w.pos != Capacity-1 {
		return false
	}
	if w.policy == PolicyFull && w.count < Capacity {
		return false
	}
	return true
}

// Reset discards all samples and rewinds the cursor.
func (w *Window) Reset() {
	clear(w.data)
	w.pos = 0
	w.count = 0
}

// Len returns the number of samples recorded since the last reset, capped at Capacity.
func (w *Window) Len() int { return w.count }

// Cursor returns the slot the next sample will be written to.
func (w *Window) Cursor() int { return w.pos }

// Policy returns the cycle policy the window was created with.
func (w *Window) Policy() Policy { return w.policy }

// Snapshot returns a copy of all Capacity slots in buffer order.
func (w *Window) Snapshot() []float64 {
	out := make([]float64, Capacity)
	copy(out, w.data)
	return out
}
