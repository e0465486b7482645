package sim

// updatePickups collects every uncollected coin the live player overlaps.
func updatePickups(s *Session) {
	if !s.Player.Alive {
		return
	}
	pr := s.Player.Rect()
	for i := range s.Coins {
		c := &s.Coins[i]
		if c.Collected || !pr.Overlaps(c.Rect()) {
			continue
		}
		c.Collected = true
		s.Stats.Score += s.tuning.CoinScore
		s.Stats.CoinsCollected++
		s.emit(EventCoin, CauseNone, i)
	}
}
