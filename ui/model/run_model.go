package model

import (
	"time"
)

// RunModel tracks how long the render loop has been measuring in the current
// run and across all runs. A run begins when the loop leaves Idle and ends when
// it returns there. The zero value is ready to use.
type RunModel struct {
	active   bool
	runStart time.Time
	lastRun  time.Duration
	total    time.Duration
	runs     int
}

// NewRunModel returns a pointer to a ready-to-use RunModel.
func NewRunModel() *RunModel { return &RunModel{} }

// OnTick folds the loop's running flag at now into the model.
func (m *RunModel) OnTick(running bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case running && !m.active:
		m.active = true
		m.runStart = now
		m.lastRun = 0
		m.runs++
	case running:
		m.lastRun = now.Sub(m.runStart)
	case m.active:
		m.lastRun = now.Sub(m.runStart)
		m.total += m.lastRun
		m.active = false
	}
}

// Values returns the current (or last) run duration and the total. The total
// includes the ongoing run.
func (m *RunModel) Values() (run, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	run = m.lastRun
	total = m.total
	if m.active {
		total += run
	}
	return
}

// Runs returns how many runs have started.
func (m *RunModel) Runs() int {
	if m == nil {
		return 0
	}
	return m.runs
}
