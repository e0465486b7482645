package sim

// Clock is a fixed-timestep accumulator. Real elapsed time goes in; whole
// substeps of Step seconds come out, at most MaxSteps per frame. Time left over
// stays in the accumulator, so sustained lag slows the game down instead of
// skipping steps.
type Clock struct {
	Step     float64
	MaxSteps int
	MaxFrame float64 // elapsed time above this is dropped before accumulating

	accumulator float64
}

// NewClock creates a clock from the tuning's timing constants.
func NewClock(t Tuning) Clock {
	return Clock{
		Step:     t.FixedStep,
		MaxSteps: t.MaxSubsteps,
		MaxFrame: t.MaxFrameTime,
	}
}

// Advance adds elapsed seconds and runs substep for every whole step it can
// drain this frame. It returns the number of substeps run.
func (c *Clock) Advance(elapsed float64, substep func(dt float64)) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if c.MaxFrame > 0 && elapsed > c.MaxFrame {
		elapsed = c.MaxFrame
	}
	c.accumulator += elapsed

	steps := 0
	for c.accumulator >= c.Step && steps < c.MaxSteps {
		substep(c.Step)
		c.accumulator -= c.Step
		steps++
	}
	return steps
}
