package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// Colors follow the level palette: brown ground, green grass, red spikes,
// a red hero, purple enemies and gold coins.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSky:       lipgloss.NewStyle().Foreground(lipgloss.Color("#5C94FC")),
	core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5E3C")),
	core.ColorGrass:     lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
	core.ColorSpike:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1744")),
	core.ColorPlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E44040")),
	core.ColorPlayerEye: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#E44040")),
	core.ColorDead:      lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	core.ColorEnemy:     lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2D8B")),
	core.ColorCoin:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	core.ColorFlag:      lipgloss.NewStyle().Foreground(lipgloss.Color("#39FF14")),
	core.ColorPole:      lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	core.ColorCloud:     lipgloss.NewStyle().Foreground(lipgloss.Color("#C8D8FF")),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
	core.ColorOverlay:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#000000")),
	core.ColorTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Background(lipgloss.Color("#000000")).Bold(true),
	core.ColorPrompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("#39FF14")).Background(lipgloss.Color("#000000")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
