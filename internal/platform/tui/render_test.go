package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

func TestRenderScreenKeepsGeometry(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.Fill(' ', core.ColorDefault)
	s.DrawTextColor(0, 0, "COINS", core.ColorHUD)
	s.SetColor(6, 1, '█', core.ColorPlayer)
	s.SetColor(7, 1, '•', core.ColorPlayerEye)
	s.SetColor(0, 2, '▓', core.Color(250)) // unknown colors fall back to plain

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rows = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("row %d width = %d, want 12", i, w)
		}
	}
	if !strings.Contains(out, "COINS") || !strings.Contains(out, "•") {
		t.Error("rendered text lost")
	}
}

func TestPaletteCoversEveryColor(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorPrompt; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
