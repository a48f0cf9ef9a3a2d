// Package tui runs simulations in the terminal with Bubble Tea. It owns the
// tick loop, key mapping, the simulation picker, the run history board and
// the SSH server that serves all of them remotely.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the model
// that scheduled it, so ticks left over from a closed simulation are dropped.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh tick generation for a new model.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a command that sends tick messages at the given rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
