// Package tui provides the Bubble Tea integration for the snake game.
// It runs the tick loop, maps keys to game actions, and executes the loop
// effects returned by the game session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-deluxe/internal/games/snake"
)

// TickMsg is sent to trigger a game tick. Gen identifies the arming that
// scheduled it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a command that sends one TickMsg after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// loop tracks the single pending tick. tea.Tick cannot be cancelled, so
// every arm or stop bumps the generation and ticks carrying an older one
// are dropped.
type loop struct {
	gen   uint64
	armed bool
}

// apply executes the loop effects and returns the command scheduling the
// next tick, if any.
func (l *loop) apply(effects []snake.Effect) tea.Cmd {
	var cmd tea.Cmd
	for _, e := range effects {
		switch e.Kind {
		case snake.EffectArmLoop:
			l.gen++
			l.armed = true
			cmd = tickCmd(l.gen, e.Interval)
		case snake.EffectStopLoop:
			l.gen++
			l.armed = false
			cmd = nil
		}
	}
	return cmd
}

// accept reports whether msg belongs to the current arming.
func (l *loop) accept(msg TickMsg) bool {
	return l.armed && msg.Gen == l.gen
}

// next schedules the following tick of the current arming.
func (l *loop) next(interval time.Duration) tea.Cmd {
	if !l.armed {
		return nil
	}
	return tickCmd(l.gen, interval)
}
