package sim

// State is the game state machine phase.
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateWin
)

// String returns the phase name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// transitions lists every allowed edge of the state machine.
var transitions = map[State][]State{
	StateMenu:     {StatePlaying},
	StatePlaying:  {StateGameOver, StateWin},
	StateGameOver: {StatePlaying},
	StateWin:      {StatePlaying},
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// transition moves to the target state if the edge is legal.
func (s *Session) transition(to State) bool {
	if !CanTransition(s.state, to) {
		return false
	}
	s.state = to
	return true
}

// RequestReset rebuilds the whole session and starts playing. It is honored
// only from Menu, GameOver or Win and ignored while playing.
func (s *Session) RequestReset() bool {
	if !s.transition(StatePlaying) {
		return false
	}
	s.rebuild()
	s.emit(EventReset, CauseNone, -1)
	return true
}

// Tick runs one fixed substep of the state machine.
func (s *Session) Tick(in InputFrame, dt float64) {
	s.tick++
	s.Stats.GameTime += dt

	if s.state == StatePlaying {
		s.Stats.PlayTime += dt
		s.stepPlaying(in, dt)
		return
	}

	if in.StartPressed {
		s.RequestReset()
	}
}

// stepPlaying is the ordered substep pipeline. The player must be fully
// resolved, including terminal transitions, before anything reads its
// position; a transition out of Playing ends the substep.
func (s *Session) stepPlaying(in InputFrame, dt float64) {
	updatePlayer(s, in, dt)
	if s.state != StatePlaying {
		return
	}
	updateEnemies(s, dt)
	updatePickups(s)
	updateCamera(s)
}
