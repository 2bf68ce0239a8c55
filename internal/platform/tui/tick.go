// Package tui provides the Bubble Tea driver for the brick engine.
// It handles the terminal UI loop, input mapping and gravity scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickgame/internal/tetris"
)

const (
	// idlePoll is the wake-up interval while the engine has no deadline.
	idlePoll = 100 * time.Millisecond
	// maxDrain bounds how many transient phases one message may advance.
	maxDrain = 8
)

// TickMsg is sent when the engine's gravity deadline may have passed.
type TickMsg time.Time

// tickCmd schedules the next TickMsg for when the engine next needs a tick.
func tickCmd(e *tetris.Engine) tea.Cmd {
	d := e.TimeRemaining()
	switch {
	case d == tetris.NoDeadline:
		d = idlePoll
	case d < time.Millisecond:
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// drain runs due ticks until the engine waits on its gravity timer again.
func drain(e *tetris.Engine) {
	for i := 0; i < maxDrain; i++ {
		if !e.TickIfDue() {
			return
		}
	}
}
