// Package snake implements the Snake game core: grid movement, food and
// obstacle placement, timed power-ups, collision detection and the
// ready/playing/paused/gameOver state machine.
//
// All mutable state lives in a Session. The package never touches a timer or
// a terminal; transitions return Effects that the platform layer executes.
package snake

import "github.com/vovakirdan/snake-deluxe/internal/core"

// Position is a tile-grid coordinate.
type Position = core.Point

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the one-tile offset for the direction.
func (d Direction) Delta() Position {
	switch d {
	case DirUp:
		return Position{X: 0, Y: -1}
	case DirDown:
		return Position{X: 0, Y: 1}
	case DirLeft:
		return Position{X: -1, Y: 0}
	default:
		return Position{X: 1, Y: 0}
	}
}

// Opposite reports whether two directions are reversed on the same axis.
func (d Direction) Opposite(o Direction) bool {
	return (d == DirUp && o == DirDown) ||
		(d == DirDown && o == DirUp) ||
		(d == DirLeft && o == DirRight) ||
		(d == DirRight && o == DirLeft)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a movement action to a direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionMoveUp:
		return DirUp, true
	case core.ActionMoveDown:
		return DirDown, true
	case core.ActionMoveLeft:
		return DirLeft, true
	case core.ActionMoveRight:
		return DirRight, true
	}
	return 0, false
}

// FoodKind identifies the effect of a food item.
type FoodKind int

const (
	FoodStandard FoodKind = iota
	FoodBonus
	FoodGhost
	FoodSlow
)

func (k FoodKind) String() string {
	switch k {
	case FoodStandard:
		return "standard"
	case FoodBonus:
		return "bonus"
	case FoodGhost:
		return "ghost"
	case FoodSlow:
		return "slow"
	default:
		return "unknown"
	}
}

// Grows reports whether eating this kind permanently lengthens the snake.
func (k FoodKind) Grows() bool {
	return k == FoodStandard || k == FoodBonus
}

// PowerUp returns the power-up activated by eating this kind.
func (k FoodKind) PowerUp() PowerUpKind {
	switch k {
	case FoodBonus:
		return PowerUpSpeedBoost
	case FoodGhost:
		return PowerUpGhost
	case FoodSlow:
		return PowerUpSlowDown
	default:
		return PowerUpNone
	}
}

// Food is the single collectible on the board.
type Food struct {
	Pos  Position
	Kind FoodKind
}

// PowerUpKind identifies a timed modifier.
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpGhost
	PowerUpSpeedBoost
	PowerUpSlowDown
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpNone:
		return "none"
	case PowerUpGhost:
		return "ghost"
	case PowerUpSpeedBoost:
		return "speedBoost"
	case PowerUpSlowDown:
		return "slowDown"
	default:
		return "unknown"
	}
}

// AffectsSpeed reports whether the power-up changes the tick interval.
func (k PowerUpKind) AffectsSpeed() bool {
	return k == PowerUpSpeedBoost || k == PowerUpSlowDown
}

// Label is the player-facing status text.
func (k PowerUpKind) Label() string {
	switch k {
	case PowerUpGhost:
		return "Ghost Mode!"
	case PowerUpSpeedBoost:
		return "Speed Boost!"
	case PowerUpSlowDown:
		return "Slow Down!"
	default:
		return ""
	}
}
