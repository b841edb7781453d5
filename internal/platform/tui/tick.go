// Package tui provides the Bubble Tea integration for the jumper.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame. Owner identifies the model that
// scheduled it and Gen the driver generation; a model drops ticks that
// carry anything but its own pair.
type TickMsg struct {
	Owner uint64
	Gen   uint64
	Time  time.Time
}

var lastOwner atomic.Uint64

// nextOwner returns a process-wide unique tick owner ID.
func nextOwner() uint64 {
	return lastOwner.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick after a frame
// interval at the specified rate.
func tickCmd(owner, gen uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Owner: owner, Gen: gen, Time: t}
	})
}
