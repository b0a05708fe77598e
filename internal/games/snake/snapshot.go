package snake

import (
	"slices"
	"time"
)

// Snapshot is a read-only copy of the session handed to renderers and tests.
type Snapshot struct {
	Tick      uint64
	State     State
	Overlay   Overlay
	Grid      Grid
	Snake     []Position // head first
	Food      *Food
	Obstacles []Position
	Dir       Direction
	Ghost     bool
	PowerUp   PowerUpKind
	Status    string // power-up indicator, empty when none is active
	Score     int
	HighScore int
	Interval  time.Duration
}

// Snapshot returns a copy of the current game state. Mutating the result
// does not affect the session.
func (s *Session) Snapshot() Snapshot {
	var food *Food
	if s.food != nil {
		f := *s.food
		food = &f
	}
	return Snapshot{
		Tick:      s.ticks,
		State:     s.state,
		Overlay:   s.overlay,
		Grid:      s.rules.Grid,
		Snake:     slices.Clone(s.snake),
		Food:      food,
		Obstacles: slices.Clone(s.obstacles),
		Dir:       s.input.Current(),
		Ghost:     s.powerUps.Ghost(),
		PowerUp:   s.powerUps.Active(),
		Status:    s.status,
		Score:     s.score,
		HighScore: s.highScore,
		Interval:  s.interval,
	}
}
