// Package tui provides the Bubble Tea adapter for the flappy game.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TickInterval picks the wall-clock tick period. A positive tick rate
// overrides the game's own frame delay.
func TickInterval(tickRate int, frameDelay time.Duration) time.Duration {
	if tickRate > 0 {
		return time.Second / time.Duration(tickRate)
	}
	if frameDelay > 0 {
		return frameDelay
	}
	return time.Second / 60
}

// GameInterval is TickInterval using the frame delay g actually runs with.
func GameInterval(g registry.Game, tickRate int) time.Duration {
	var delay time.Duration
	if c, ok := g.(interface{ Config() config.FlappyConfig }); ok {
		delay = c.Config().World.FrameDelay
	}
	return TickInterval(tickRate, delay)
}
