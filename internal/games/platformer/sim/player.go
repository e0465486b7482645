package sim

import "math"

// timerEpsilon absorbs float drift when a countdown is summed from fixed steps.
const timerEpsilon = 1e-9

// updatePlayer advances the player by one substep.
func updatePlayer(s *Session, in InputFrame, dt float64) {
	p := &s.Player
	t := &s.tuning

	if !p.Alive {
		s.DeathTimer -= dt
		if s.DeathTimer <= timerEpsilon {
			s.DeathTimer = 0
			if s.transition(StateGameOver) {
				s.emit(EventGameOver, CauseNone, -1)
			}
		}
		return
	}

	dir := in.Horizontal()
	p.VX = float64(dir) * t.PlayerSpeed
	if dir != 0 {
		p.Facing = dir
	}

	if in.JumpPressed {
		p.JumpBufferTimer = t.JumpBuffer
	} else {
		p.JumpBufferTimer = countdown(p.JumpBufferTimer, dt)
	}
	if !p.Grounded {
		p.CoyoteTimer = countdown(p.CoyoteTimer, dt)
	}

	if p.JumpBufferTimer > 0 && p.CoyoteTimer > 0 {
		p.VY = t.JumpSpeed
		p.Grounded = false
		p.CoyoteTimer = 0
		p.JumpBufferTimer = 0
		s.emit(EventJump, CauseNone, -1)
	}

	// Releasing jump early cuts the rise short; falling is unaffected.
	if !in.JumpHeld && p.VY < t.JumpSpeed*t.JumpCutThreshold {
		p.VY *= t.JumpCutFactor
	}

	p.VY = math.Min(p.VY+t.Gravity*dt, t.TerminalVelocity)

	wasGrounded := p.Grounded
	p.Grounded = false

	p.X += p.VX * dt
	if !s.resolvePlayer(AxisX, wasGrounded) {
		return
	}

	p.Y += p.VY * dt
	if !s.resolvePlayer(AxisY, wasGrounded) {
		return
	}

	levelW := s.level.Grid.Width()
	if p.X < 0 {
		p.X = 0
		p.VX = 0
	}
	if p.X+p.W > levelW {
		p.X = levelW - p.W
		p.VX = 0
	}

	if p.Y > s.level.Grid.Height()+t.FallMargin {
		s.killPlayer(CauseFall)
	}
}

// resolvePlayer resolves one axis of player movement against the grid. It
// returns false when the substep must stop because of a death or the goal.
func (s *Session) resolvePlayer(axis Axis, wasGrounded bool) bool {
	p := &s.Player
	res := ResolveAxis(s.level.Grid, p.Body, axis)
	p.Body = res.Body

	switch res.Contact {
	case ContactHazard:
		s.killPlayer(CauseHazard)
		return false
	case ContactGoal:
		if s.transition(StateWin) {
			s.emit(EventWin, CauseNone, -1)
		}
		return false
	}

	if res.Landed {
		p.Grounded = true
		p.CoyoteTimer = s.tuning.CoyoteTime
		if !wasGrounded {
			s.emit(EventLand, CauseNone, -1)
		}
	}
	return true
}

// killPlayer starts the fixed-length death sequence. Input is ignored from here on.
func (s *Session) killPlayer(cause DeathCause) {
	if !s.Player.Alive {
		return
	}
	s.Player.Alive = false
	s.DeathTimer = s.tuning.DeathDuration
	s.emit(EventDeath, cause, -1)
}

// countdown decrements a timer, flooring at zero.
func countdown(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}
