package snake

import (
	"math/rand"
	"slices"
)

// Placer draws random food and obstacle positions.
// Every loop is bounded; callers decide how to degrade on failure.
type Placer struct {
	grid    Grid
	rng     *rand.Rand
	weights FoodWeights
}

// NewPlacer creates a placer over the grid using the given random source.
func NewPlacer(grid Grid, rng *rand.Rand, weights FoodWeights) *Placer {
	return &Placer{grid: grid, rng: rng, weights: weights}
}

// FallbackFood is used when no free tile could be found.
func FallbackFood() Food {
	return Food{Pos: Position{X: 0, Y: 0}, Kind: FoodStandard}
}

// PickKind draws a food kind using cumulative thresholds
// ghost, then bonus, then slow; the remainder is standard.
func (p *Placer) PickKind() FoodKind {
	return p.weights.kindFor(p.rng.Float64())
}

// PlaceFood picks a kind, then samples tiles until one is free of snake,
// obstacles and the current food. It gives up after Cells() attempts and
// reports false.
func (p *Placer) PlaceFood(b Board) (Food, bool) {
	kind := p.PickKind()
	for i, n := 0, p.grid.Cells(); i < n; i++ {
		pos := p.grid.randomCell(p.rng)
		if !b.IsOccupied(pos, OccupancyAll) {
			return Food{Pos: pos, Kind: kind}, true
		}
	}
	return Food{}, false
}

// PlaceObstacles samples count distinct tiles that avoid the initial snake
// and lie at least radius tiles (Euclidean) from spawn. It gives up after
// 2×Cells() attempts and returns the partial set with false.
func (p *Placer) PlaceObstacles(count int, spawn Position, snake []Position, radius int) ([]Position, bool) {
	placed := make([]Position, 0, count)
	maxAttempts := 2 * p.grid.Cells()
	for attempts := 0; len(placed) < count && attempts < maxAttempts; attempts++ {
		pos := p.grid.randomCell(p.rng)
		if slices.Contains(placed, pos) || slices.Contains(snake, pos) {
			continue
		}
		if pos.DistSq(spawn) < radius*radius {
			continue
		}
		placed = append(placed, pos)
	}
	return placed, len(placed) == count
}
