package core

// Color is a semantic foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

// Palette used by the platformer renderer and the HUD.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorGrass
	ColorSpike
	ColorPlayer
	ColorPlayerEye
	ColorDead
	ColorEnemy
	ColorCoin
	ColorFlag
	ColorPole
	ColorCloud
	ColorHUD
	ColorOverlay
	ColorTitle
	ColorPrompt
)
