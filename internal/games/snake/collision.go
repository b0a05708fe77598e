package snake

import "slices"

// Collision identifies the terminal condition hit by the head.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
	CollisionObstacle
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// DetectCollision checks wall, self and obstacle collisions in that order
// and returns the first match. Ghost mode suspends every check.
func DetectCollision(grid Grid, snake []Position, obstacles []Position, ghost bool) Collision {
	if ghost || len(snake) == 0 {
		return CollisionNone
	}
	head := snake[0]
	if !grid.InBounds(head) {
		return CollisionWall
	}
	if slices.Contains(snake[1:], head) {
		return CollisionSelf
	}
	if slices.Contains(obstacles, head) {
		return CollisionObstacle
	}
	return CollisionNone
}

// ParseCollision is the inverse of Collision.String.
func ParseCollision(s string) Collision {
	switch s {
	case "wall":
		return CollisionWall
	case "self":
		return CollisionSelf
	case "obstacle":
		return CollisionObstacle
	default:
		return CollisionNone
	}
}
