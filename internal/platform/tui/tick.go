// Package tui provides the Bubble Tea integration for mazehunt.
// It handles the terminal UI loop, input mapping, fixed-timestep pacing
// and score persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per render frame. Simulation ticks are derived
// from it through the accumulator, not issued one-to-one.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// given render rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// maxStepsPerFrame caps how many simulation ticks a single render frame
// may drain, so a long stall cannot spiral into an unbounded catch-up.
const maxStepsPerFrame = 8

// Accumulator converts variable-length render frames into fixed-size
// simulation steps. Elapsed wall-clock time is accumulated and drained in
// whole steps; the remainder carries into the next frame, keeping
// simulation speed independent of display refresh rate.
type Accumulator struct {
	stepMS  float64
	carryMS float64
	last    time.Time
	started bool
}

// NewAccumulator creates an accumulator for the given simulation tick rate.
func NewAccumulator(tickRate int) *Accumulator {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Accumulator{stepMS: 1000.0 / float64(tickRate)}
}

// Advance records the current frame time and returns how many fixed steps
// the simulation should run to catch up.
func (a *Accumulator) Advance(now time.Time) int {
	if !a.started {
		a.started = true
		a.last = now
		return 1
	}

	a.carryMS += float64(now.Sub(a.last).Microseconds()) / 1000.0
	a.last = now

	steps := int(a.carryMS / a.stepMS)
	if steps > maxStepsPerFrame {
		steps = maxStepsPerFrame
		a.carryMS = 0
		return steps
	}
	a.carryMS -= float64(steps) * a.stepMS
	return steps
}

// Reset clears accumulated time, e.g. after a pause or modal screen so the
// backlog does not replay as a burst of ticks.
func (a *Accumulator) Reset() {
	a.carryMS = 0
	a.started = false
}
