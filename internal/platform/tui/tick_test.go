package tui

import (
	"testing"
	"time"
)

func TestAccumulatorFirstFrame(t *testing.T) {
	acc := NewAccumulator(60)

	if steps := acc.Advance(time.Now()); steps != 1 {
		t.Errorf("First Advance() = %d, expected 1", steps)
	}
}

func TestAccumulatorSteadyRate(t *testing.T) {
	acc := NewAccumulator(60)
	now := time.Unix(0, 0)
	acc.Advance(now)

	// 60 tick/s drained at 30 frames/s should yield 2 steps per frame
	total := 0
	for i := 0; i < 30; i++ {
		now = now.Add(time.Second / 30)
		total += acc.Advance(now)
	}

	if total < 58 || total > 62 {
		t.Errorf("One simulated second produced %d steps, expected ~60", total)
	}
}

func TestAccumulatorCarriesRemainder(t *testing.T) {
	acc := NewAccumulator(60)
	now := time.Unix(0, 0)
	acc.Advance(now)

	// Half a step of elapsed time: no step yet, remainder carried
	now = now.Add(8 * time.Millisecond)
	if steps := acc.Advance(now); steps != 0 {
		t.Fatalf("Advance() after half step = %d, expected 0", steps)
	}

	// The second half completes one step
	now = now.Add(9 * time.Millisecond)
	if steps := acc.Advance(now); steps != 1 {
		t.Errorf("Advance() after full step = %d, expected 1", steps)
	}
}

func TestAccumulatorCapsCatchUp(t *testing.T) {
	acc := NewAccumulator(60)
	now := time.Unix(0, 0)
	acc.Advance(now)

	// A multi-second stall must not replay as an unbounded burst
	now = now.Add(5 * time.Second)
	if steps := acc.Advance(now); steps != maxStepsPerFrame {
		t.Errorf("Advance() after stall = %d, expected cap %d", steps, maxStepsPerFrame)
	}

	// The backlog is discarded along with the cap
	now = now.Add(time.Second / 30)
	if steps := acc.Advance(now); steps > maxStepsPerFrame {
		t.Errorf("Backlog leaked through the cap: %d steps", steps)
	}
}

func TestAccumulatorReset(t *testing.T) {
	acc := NewAccumulator(60)
	now := time.Unix(0, 0)
	acc.Advance(now)
	acc.Advance(now.Add(time.Second))

	acc.Reset()

	// After reset the accumulator behaves like a fresh one
	if steps := acc.Advance(now.Add(2 * time.Second)); steps != 1 {
		t.Errorf("Advance() after Reset() = %d, expected 1", steps)
	}
}

func TestAccumulatorInvalidRate(t *testing.T) {
	acc := NewAccumulator(0)
	if acc.stepMS != 1000.0/60 {
		t.Errorf("Zero tick rate stepMS = %v, expected 60 ticks/s default", acc.stepMS)
	}
}
