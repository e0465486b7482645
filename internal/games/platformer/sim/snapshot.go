package sim

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the session.
type Snapshot struct {
	Tick           uint64
	State          State
	Player         Player
	Enemies        []Enemy
	Coins          []Coin
	CameraX        float64
	Score          int
	CoinsCollected int
	TotalCoins     int
	PlayTime       float64
	GameTime       float64
	DeathTimer     float64
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:           s.tick,
		State:          s.state,
		Player:         s.Player,
		Enemies:        append([]Enemy(nil), s.Enemies...),
		Coins:          append([]Coin(nil), s.Coins...),
		CameraX:        s.Camera.X,
		Score:          s.Stats.Score,
		CoinsCollected: s.Stats.CoinsCollected,
		TotalCoins:     len(s.Coins),
		PlayTime:       s.Stats.PlayTime,
		GameTime:       s.Stats.GameTime,
		DeathTimer:     s.DeathTimer,
	}
}
