package core

import "time"

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Host frames per second (the simulation substep rate is fixed separately)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the host-facing summary of a game, returned after every frame.
type GameState struct {
	Phase      string        // Human-readable state machine phase
	Score      int           // Current score
	Coins      int           // Coins collected this run
	TotalCoins int           // Coins placed in the level
	PlayTime   time.Duration // Time spent in the playing phase this run
	Over       bool          // The run ended in a loss
	Won        bool          // The run ended at the goal
}

// Finished reports whether the current run has ended either way.
func (s GameState) Finished() bool {
	return s.Over || s.Won
}

// Event is something notable that happened during a frame, reported to the
// host for logging and persistence.
type Event struct {
	Kind   string  // e.g. "coin", "death", "win"
	Detail string  // free-form context such as a death cause
	Tick   uint64  // substep counter when it happened
	X, Y   float64 // player position in world units
}

// StepResult is returned by Game.Frame after a display frame was simulated.
type StepResult struct {
	State    GameState
	Substeps int     // Fixed substeps executed during the frame
	Events   []Event // Events emitted by those substeps, oldest first
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting the current run.
type Resizer interface {
	Resize(width, height int)
}
