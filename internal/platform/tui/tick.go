// Package tui provides the Bubble Tea host for Pixel Dash.
// It handles the terminal UI loop, input mapping, run persistence and the
// level menu, scoreboard and SSH front ends.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a display frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// The simulation measures the real time between ticks, so a late tick only
// means more fixed substeps in the next frame.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
