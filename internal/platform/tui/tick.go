// Package tui runs the game in a terminal with Bubble Tea.
// It maps keys to engine actions, drives the session with a tick loop and
// draws snapshots into a core.Screen, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a session step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TickRateFor converts a frame interval to ticks per second.
func TickRateFor(interval time.Duration) int {
	if interval <= 0 {
		return 1
	}
	return max(int(time.Second/interval), 1)
}
