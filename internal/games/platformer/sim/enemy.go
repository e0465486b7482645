package sim

// updateEnemies patrols every live enemy and resolves contact with the player
// in list order.
func updateEnemies(s *Session, dt float64) {
	p := &s.Player
	t := &s.tuning

	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive {
			continue
		}

		e.X += e.Speed * float64(e.Direction) * dt
		if e.X <= e.PatrolStart {
			e.X = e.PatrolStart
			e.Direction = 1
		}
		if e.X >= e.PatrolEnd {
			e.X = e.PatrolEnd
			e.Direction = -1
		}
		e.VX = e.Speed * float64(e.Direction)

		if !p.Alive || !p.Rect().Overlaps(e.Rect()) {
			continue
		}

		if isStomp(p.Body, e.Body) {
			e.Alive = false
			p.VY = t.JumpSpeed * t.StompBounce
			s.Stats.Score += t.StompScore
			s.emit(EventStomp, CauseNone, i)
			continue
		}
		s.killPlayer(CauseEnemy)
	}
}

// isStomp reports whether an overlapping player lands on the enemy: falling,
// with its bottom edge strictly above the enemy's vertical midpoint.
func isStomp(player, enemy Body) bool {
	return player.VY > 0 && player.Bottom() < enemy.Y+enemy.H*0.5
}
