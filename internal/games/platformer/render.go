package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/games/platformer/sim"
)

// A tile is drawn as a block of terminal cells.
const (
	colsPerTile = 4
	rowsPerTile = 2
	hudRows     = 1
)

// Visual characters for rendering
const (
	GroundChar = '▓'
	GrassChar  = '█'
	SpikeChar  = '▲'
	PoleChar   = '│'
	FlagChar   = '▶'
	FlagWave   = '▷'
	CloudChar  = '░'
	BodyChar   = '█'
	EyeChar    = '•'
	DeadChar   = '▒'
)

// cloud is background decoration in world units, scrolled with parallax.
type cloud struct{ x, y, w float64 }

var clouds = []cloud{
	{50, 30, 60}, {200, 50, 80}, {400, 25, 50}, {600, 45, 70}, {850, 35, 55},
	{1100, 55, 65}, {1400, 28, 75}, {1700, 40, 60}, {2000, 50, 80}, {2300, 30, 55},
}

const cloudParallax = 0.2

// viewportWidth is how many world units fit across the screen.
func viewportWidth(cellSize float64, screenW int) float64 {
	return float64(screenW) * cellSize / colsPerTile
}

// view maps world coordinates to screen cells for one frame.
type view struct {
	camX   float64
	unitX  float64 // world units per column
	unitY  float64 // world units per row
	top    int     // screen row of world row 0
	width  int
	height int
}

func newView(dst *core.Screen, snap sim.Snapshot, grid *sim.TileGrid) view {
	cs := grid.CellSize()
	v := view{
		camX:   snap.CameraX,
		unitX:  cs / colsPerTile,
		unitY:  cs / rowsPerTile,
		width:  dst.Width(),
		height: dst.Height(),
	}

	worldRows := grid.Rows() * rowsPerTile
	avail := v.height - hudRows
	if worldRows <= avail {
		v.top = hudRows + (avail-worldRows)/2
		return v
	}

	// Taller than the screen: scroll vertically to keep the player in view.
	playerRow := int(math.Floor(snap.Player.Y / v.unitY))
	scroll := core.Clamp(playerRow-avail/2, 0, worldRows-avail)
	v.top = hudRows - scroll
	return v
}

func (v view) col(x float64) int {
	return int(math.Floor((x - v.camX) / v.unitX))
}

func (v view) row(y float64) int {
	return v.top + int(math.Floor(y/v.unitY))
}

// span returns the inclusive cell range covered by a world box.
func (v view) span(x, y, w, h float64) (c0, r0, c1, r1 int) {
	const inset = 1e-6
	return v.col(x), v.row(y), v.col(x + w - inset), v.row(y + h - inset)
}

// Render draws the level, entities, HUD and any state overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.drawPanel(dst, []panelLine{
			{text: "LEVEL UNAVAILABLE", color: core.ColorSpike},
			{text: fmt.Sprint(g.err), color: core.ColorOverlay},
		}, 0)
		return
	}

	snap := g.session.Snapshot()
	grid := g.level.Grid
	v := newView(dst, snap, grid)

	g.drawClouds(dst, v)
	g.drawTiles(dst, v, grid, snap.GameTime)
	g.drawCoins(dst, v, snap)
	g.drawEnemies(dst, v, snap)
	if snap.State != sim.StateMenu {
		g.drawPlayer(dst, v, snap)
	}
	g.drawHUD(dst, snap)

	switch snap.State {
	case sim.StateMenu:
		g.drawPanel(dst, []panelLine{
			{text: "PIXEL DASH", color: core.ColorTitle},
			{text: g.level.Name, color: core.ColorCoin},
			{text: "Arrows / WASD to move, Space / Up to jump", color: core.ColorOverlay},
			{},
			{text: "Press SPACE to Start", color: core.ColorPrompt, blink: true},
		}, snap.GameTime)
	case sim.StateGameOver:
		g.drawPanel(dst, []panelLine{
			{text: "GAME OVER", color: core.ColorSpike},
			{text: fmt.Sprintf("Score: %d", snap.Score), color: core.ColorHUD},
			{},
			{text: "Press SPACE to Retry", color: core.ColorPrompt, blink: true},
		}, snap.GameTime)
	case sim.StateWin:
		g.drawPanel(dst, []panelLine{
			{text: "LEVEL COMPLETE!", color: core.ColorFlag},
			{text: fmt.Sprintf("Score: %d", snap.Score), color: core.ColorHUD},
			{text: fmt.Sprintf("Time: %.1fs", snap.PlayTime), color: core.ColorHUD},
			{},
			{text: "Press SPACE to Play Again", color: core.ColorPrompt, blink: true},
		}, snap.GameTime)
	}
}

func (g *Game) drawClouds(dst *core.Screen, v view) {
	offset := v.camX * cloudParallax
	for _, cl := range clouds {
		c0 := int(math.Floor((cl.x - offset) / v.unitX))
		n := int(math.Ceil(cl.w / v.unitX))
		if c0+n < 0 || c0 >= v.width {
			continue
		}
		dst.DrawHLine(c0, v.row(cl.y), n, CloudChar, core.ColorCloud)
	}
}

func (g *Game) drawTiles(dst *core.Screen, v view, grid *sim.TileGrid, gameTime float64) {
	cs := grid.CellSize()
	flag := FlagChar
	if math.Sin(gameTime*4) < 0 {
		flag = FlagWave
	}

	for sy := hudRows; sy < v.height; sy++ {
		wy := sy - v.top
		if wy < 0 || wy >= grid.Rows()*rowsPerTile {
			continue
		}
		tileRow, sub := wy/rowsPerTile, wy%rowsPerTile

		for sx := 0; sx < v.width; sx++ {
			wx := v.camX + (float64(sx)+0.5)*v.unitX
			tileCol := core.FloorDiv(wx, cs)
			subCol := int((wx - float64(tileCol)*cs) / v.unitX)

			switch grid.TileAt(tileCol, tileRow) {
			case sim.TileSolid:
				if sub == 0 && grid.TileAt(tileCol, tileRow-1) != sim.TileSolid {
					dst.SetColor(sx, sy, GrassChar, core.ColorGrass)
				} else {
					dst.SetColor(sx, sy, GroundChar, core.ColorGround)
				}
			case sim.TileHazard:
				if sub == rowsPerTile-1 {
					dst.SetColor(sx, sy, SpikeChar, core.ColorSpike)
				}
			case sim.TileGoal:
				switch {
				case subCol == 1:
					dst.SetColor(sx, sy, PoleChar, core.ColorPole)
				case subCol == 2 && sub == 0:
					dst.SetColor(sx, sy, flag, core.ColorFlag)
				}
			}
		}
	}
}

func (g *Game) drawCoins(dst *core.Screen, v view, snap sim.Snapshot) {
	wide := math.Abs(math.Sin(snap.GameTime*5)) > 0.5
	for _, c := range snap.Coins {
		if c.Collected {
			continue
		}
		x := v.col(c.X)
		y := v.row(c.Y + c.Size/2)
		if wide {
			dst.DrawTextColor(x, y, "()", core.ColorCoin)
		} else {
			dst.SetColor(x, y, '|', core.ColorCoin)
		}
	}
}

func (g *Game) drawEnemies(dst *core.Screen, v view, snap sim.Snapshot) {
	for _, e := range snap.Enemies {
		if !e.Alive {
			continue
		}
		c0, r0, c1, r1 := v.span(e.X, e.Y, e.W, e.H)
		fillCells(dst, c0, r0, c1, r1, BodyChar, core.ColorEnemy)
		eye := c1
		if e.Direction < 0 {
			eye = c0
		}
		dst.SetColor(eye, r0, EyeChar, core.ColorPlayerEye)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v view, snap sim.Snapshot) {
	p := snap.Player
	c0, r0, c1, r1 := v.span(p.X, p.Y, p.W, p.H)

	if !p.Alive {
		fillCells(dst, c0, r0, c1, r1, DeadChar, core.ColorDead)
		return
	}

	fillCells(dst, c0, r0, c1, r1, BodyChar, core.ColorPlayer)
	eye := c1
	if p.Facing < 0 {
		eye = c0
	}
	dst.SetColor(eye, r0, EyeChar, core.ColorPlayerEye)
}

func fillCells(dst *core.Screen, c0, r0, c1, r1 int, r rune, c core.Color) {
	for y := max(r0, hudRows); y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			dst.SetColor(x, y, r, c)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorHUD)

	coins := fmt.Sprintf(" COINS: %d / %d", snap.CoinsCollected, snap.TotalCoins)
	dst.DrawTextColor(0, 0, coins, core.ColorHUD)

	right := fmt.Sprintf("SCORE: %d  TIME: %.1fs ", snap.Score, snap.PlayTime)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorHUD)

	name := g.level.Name
	if len([]rune(coins))+len([]rune(name))+len(right)+4 <= dst.Width() {
		dst.DrawTextCentered(0, name, core.ColorTitle)
	}
}

// panelLine is one line of an overlay panel. Blinking lines are shown on
// alternate half seconds of game time.
type panelLine struct {
	text  string
	color core.Color
	blink bool
}

// drawPanel draws a message box in the center of the screen.
func (g *Game) drawPanel(dst *core.Screen, lines []panelLine, gameTime float64) {
	show := int(math.Floor(gameTime*2))%2 == 0

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l.text)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorOverlay)

	for i, l := range lines {
		if l.text == "" || (l.blink && !show) {
			continue
		}
		x := box.X + (boxW-len([]rune(l.text)))/2
		dst.DrawTextColor(x, box.Y+1+i, l.text, l.color)
	}
}
