package sim

import (
	"fmt"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// InputFrame is the per-frame intent snapshot the session consumes.
type InputFrame = core.InputFrame

// Session owns all mutable state of one play-through of a level. Nothing in
// the package keeps global state; hosts may run any number of sessions side
// by side.
type Session struct {
	Player     Player
	Enemies    []Enemy
	Coins      []Coin
	Camera     Camera
	Stats      Stats
	DeathTimer float64

	level  *Level
	tuning Tuning
	state  State
	tick   uint64
	clock  Clock
	events []Event
}

// NewSession validates the tuning against the level and returns a session
// sitting in the menu state with entities already spawned.
func NewSession(lvl *Level, t Tuning) (*Session, error) {
	if lvl == nil || lvl.Grid == nil {
		return nil, ValidationError{Code: CodeEmptyGrid, Message: "session needs a level with a grid"}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	cs := lvl.Grid.CellSize()
	for i, e := range lvl.Enemies {
		width := float64(e.PatrolRight-e.PatrolLeft+1) * cs
		if width < t.EnemyWidth {
			return nil, ValidationError{
				Code:    CodeBadPatrol,
				Message: fmt.Sprintf("enemy %d patrol is %g units wide, narrower than the enemy (%g)", i, width, t.EnemyWidth),
			}
		}
	}

	s := &Session{
		level:  lvl,
		tuning: t,
		state:  StateMenu,
		clock:  NewClock(t),
	}
	s.rebuild()
	return s, nil
}

// rebuild restores every entity and counter to its spawn value.
func (s *Session) rebuild() {
	s.Player = spawnPlayer(s.level, s.tuning)
	s.Enemies = spawnEnemies(s.level, s.tuning)
	s.Coins = spawnCoins(s.level, s.tuning)
	s.Stats = Stats{}
	s.Camera = Camera{}
	s.DeathTimer = 0
}

// Frame feeds elapsed real seconds through the fixed-step clock and returns
// the number of substeps run. Edge flags of in are only seen by the first
// substep; held flags apply to all of them.
func (s *Session) Frame(elapsed float64, in InputFrame) int {
	return s.clock.Advance(elapsed, func(dt float64) {
		s.Tick(in, dt)
		in.ClearEdges()
	})
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Tuning returns the constants in use.
func (s *Session) Tuning() Tuning { return s.tuning }

// Ticks returns the number of substeps run since creation.
func (s *Session) Ticks() uint64 { return s.tick }

// SetViewportWidth changes the camera viewport, e.g. after a terminal resize.
func (s *Session) SetViewportWidth(w float64) {
	if w <= 0 {
		return
	}
	s.tuning.ViewportWidth = w
	s.Camera.X = core.ClampF(s.Camera.X, 0, s.cameraMax())
}

// TotalCoins returns the number of coins in the level.
func (s *Session) TotalCoins() int { return len(s.Coins) }
