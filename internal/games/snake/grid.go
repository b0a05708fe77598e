package snake

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/snake-deluxe/internal/core"
)

// Grid is the discrete tile space the game runs on.
type Grid struct {
	Width  int // tiles along x
	Height int // tiles along y
}

// NewGrid derives the tile grid from a canvas size and a tile size.
func NewGrid(canvasW, canvasH, tileSize int) Grid {
	return Grid{Width: canvasW / tileSize, Height: canvasH / tileSize}
}

// Cells returns the number of tiles in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// InBounds reports whether p lies inside [0, Width) × [0, Height).
func (g Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps an out-of-range coordinate onto the opposite edge.
func (g Grid) Wrap(p Position) Position {
	return Position{X: core.Mod(p.X, g.Width), Y: core.Mod(p.Y, g.Height)}
}

// Center returns the spawn point of the snake head.
func (g Grid) Center() Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}

// randomCell samples a tile uniformly.
func (g Grid) randomCell(rng *rand.Rand) Position {
	return Position{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
}

// Occupancy selects which entity sets IsOccupied checks.
type Occupancy struct {
	Snake     bool
	Obstacles bool
	Food      bool
}

// OccupancyAll checks every entity set.
var OccupancyAll = Occupancy{Snake: true, Obstacles: true, Food: true}

// Board is a read-only view of the entities occupying the grid.
type Board struct {
	Snake     []Position
	Obstacles []Position
	Food      *Food
}

// IsOccupied reports whether p coincides with any selected entity set.
func (b Board) IsOccupied(p Position, check Occupancy) bool {
	if check.Snake && slices.Contains(b.Snake, p) {
		return true
	}
	if check.Obstacles && slices.Contains(b.Obstacles, p) {
		return true
	}
	return check.Food && b.Food != nil && b.Food.Pos == p
}
