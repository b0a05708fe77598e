package snake

import (
	"math"
	"time"
)

// ComputeSpeed returns the tick interval for a score and active power-up.
// The base interval shrinks by Step for every Threshold points, the power-up
// multiplier is applied, and the result is clamped at Min and rounded to the
// nearest millisecond.
func ComputeSpeed(r SpeedRules, score int, kind PowerUpKind) time.Duration {
	steps := 0
	if r.Threshold > 0 {
		steps = score / r.Threshold
	}
	base := float64(r.Initial.Milliseconds() - int64(steps)*r.Step.Milliseconds())

	switch kind {
	case PowerUpSpeedBoost:
		base *= r.BoostFactor
	case PowerUpSlowDown:
		base *= r.SlowFactor
	}

	ms := math.Round(math.Max(float64(r.Min.Milliseconds()), base))
	return time.Duration(ms) * time.Millisecond
}

// NextHead offsets head one tile along dir. With wrap set, coordinates that
// leave the grid reappear on the opposite edge; otherwise they stay out of
// bounds for the collision check to see.
func NextHead(grid Grid, head Position, dir Direction, wrap bool) Position {
	next := head.Add(dir.Delta())
	if wrap {
		next = grid.Wrap(next)
	}
	return next
}

// move advances the snake one tile. It returns the food eaten this tick, or
// nil. Without food the tail is dropped so the length stays constant.
func (s *Session) move(dir Direction) *Food {
	head := NextHead(s.rules.Grid, s.snake[0], dir, s.powerUps.Ghost())
	s.snake = append([]Position{head}, s.snake...)

	if s.food != nil && head == s.food.Pos {
		eaten := *s.food
		s.consume(eaten)
		return &eaten
	}

	s.snake = s.snake[:len(s.snake)-1]
	return nil
}

// consume applies score, power-up and growth effects of eaten food, then
// replaces it. Non-growing kinds drop the tail this tick as long as more than
// one segment remains.
func (s *Session) consume(f Food) {
	s.score += s.rules.Points.For(f.Kind)
	if pu := f.Kind.PowerUp(); pu != PowerUpNone {
		s.activatePowerUp(pu)
	}
	s.recomputeSpeed()
	s.placeFood()

	s.logger.Debug("food eaten", "kind", f.Kind, "score", s.score, "length", len(s.snake))

	if !f.Kind.Grows() && len(s.snake) > 1 {
		s.snake = s.snake[:len(s.snake)-1]
	}
}
