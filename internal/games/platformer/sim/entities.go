package sim

import "github.com/vovakirdan/pixel-dash/internal/core"

// Body is an axis-aligned rectangle with a velocity. X, Y is the top-left corner.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Rect returns the body's box.
func (b Body) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Body) Bottom() float64 {
	return b.Y + b.H
}

// Player is the controlled character.
type Player struct {
	Body
	Alive           bool
	Facing          int // +1 right, -1 left
	Grounded        bool
	CoyoteTimer     float64
	JumpBufferTimer float64
}

// Enemy is a patrolling walker. While alive, X stays in [PatrolStart, PatrolEnd].
type Enemy struct {
	Body
	Alive       bool
	Direction   int
	Speed       float64
	PatrolStart float64
	PatrolEnd   float64
}

// Coin is a static pickup. Collected never reverts within a run.
type Coin struct {
	X, Y      float64
	Size      float64
	Collected bool
}

// Rect returns the coin's box.
func (c Coin) Rect() core.RectF {
	return core.NewRectF(c.X, c.Y, c.Size, c.Size)
}

// Camera is the horizontal scroll offset of the viewport.
type Camera struct {
	X float64
}

// Stats are the running counters of a session.
type Stats struct {
	Score          int
	CoinsCollected int
	PlayTime       float64
	GameTime       float64 // cosmetic animation phase, advances in every state
}

func spawnPlayer(lvl *Level, t Tuning) Player {
	cs := lvl.Grid.CellSize()
	return Player{
		Body: Body{
			X: float64(lvl.PlayerSpawn.Col) * cs,
			Y: float64(lvl.PlayerSpawn.Row) * cs,
			W: t.PlayerWidth,
			H: t.PlayerHeight,
		},
		Alive:  true,
		Facing: 1,
	}
}

func spawnCoins(lvl *Level, t Tuning) []Coin {
	cs := lvl.Grid.CellSize()
	inset := (cs - t.CoinSize) / 2
	coins := make([]Coin, len(lvl.Coins))
	for i, c := range lvl.Coins {
		coins[i] = Coin{
			X:    float64(c.Col)*cs + inset,
			Y:    float64(c.Row)*cs + inset,
			Size: t.CoinSize,
		}
	}
	return coins
}

// enemyInset is the horizontal offset of an enemy inside its spawn cell.
const enemyInset = 2

func spawnEnemies(lvl *Level, t Tuning) []Enemy {
	cs := lvl.Grid.CellSize()
	enemies := make([]Enemy, len(lvl.Enemies))
	for i, e := range lvl.Enemies {
		start := float64(e.PatrolLeft) * cs
		end := float64(e.PatrolRight+1)*cs - t.EnemyWidth
		x := core.ClampF(float64(e.Col)*cs+enemyInset, start, end)
		enemies[i] = Enemy{
			Body: Body{
				X:  x,
				Y:  float64(e.Row)*cs + (cs - t.EnemyHeight),
				W:  t.EnemyWidth,
				H:  t.EnemyHeight,
				VX: t.EnemySpeed,
			},
			Alive:       true,
			Direction:   1,
			Speed:       t.EnemySpeed,
			PatrolStart: start,
			PatrolEnd:   end,
		}
	}
	return enemies
}
