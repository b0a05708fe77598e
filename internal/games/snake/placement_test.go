package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/snake-deluxe/internal/core"
)

func TestFoodWeights(t *testing.T) {
	w := DefaultRules().Weights
	tests := []struct {
		r    float64
		want FoodKind
	}{
		{0, FoodGhost},
		{0.079, FoodGhost},
		{0.081, FoodBonus},
		{0.179, FoodBonus},
		{0.181, FoodSlow},
		{0.299, FoodSlow},
		{0.301, FoodStandard},
		{0.999, FoodStandard},
	}

	for _, tt := range tests {
		if got := w.kindFor(tt.r); got != tt.want {
			t.Errorf("kindFor(%v) = %v, expected %v", tt.r, got, tt.want)
		}
	}
}

func TestPlaceFoodAvoidsOccupiedCells(t *testing.T) {
	grid := Grid{Width: 20, Height: 20}
	board := Board{
		Snake:     []Position{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
		Obstacles: []Position{{X: 1, Y: 1}, {X: 15, Y: 3}},
		Food:      &Food{Pos: Position{X: 4, Y: 4}},
	}

	for seed := int64(0); seed < 50; seed++ {
		p := NewPlacer(grid, rand.New(rand.NewSource(seed)), DefaultRules().Weights)
		f, ok := p.PlaceFood(board)
		if !ok {
			t.Fatalf("seed %d: PlaceFood() failed on a mostly empty board", seed)
		}
		if !grid.InBounds(f.Pos) {
			t.Errorf("seed %d: food %v out of bounds", seed, f.Pos)
		}
		if board.IsOccupied(f.Pos, OccupancyAll) {
			t.Errorf("seed %d: food %v on an occupied cell", seed, f.Pos)
		}
	}
}

func TestPlaceFoodExhaustion(t *testing.T) {
	grid := Grid{Width: 2, Height: 2}
	board := Board{Snake: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}
	p := NewPlacer(grid, rand.New(rand.NewSource(1)), DefaultRules().Weights)

	if _, ok := p.PlaceFood(board); ok {
		t.Error("PlaceFood() succeeded on a full board")
	}
}

func TestSessionFoodFallback(t *testing.T) {
	rules := DefaultRules()
	rules.Grid = Grid{Width: 2, Height: 2}
	s := newTestSession(t, rules, &memStore{})
	s.snake = []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	s.placeFood()
	if s.food == nil || *s.food != FallbackFood() {
		t.Errorf("food = %v, expected fallback %v", s.food, FallbackFood())
	}
}

func TestPlaceObstacles(t *testing.T) {
	grid := Grid{Width: 20, Height: 20}
	spawn := grid.Center()
	snake := []Position{spawn, {X: spawn.X - 1, Y: spawn.Y}, {X: spawn.X - 2, Y: spawn.Y}}

	for seed := int64(0); seed < 50; seed++ {
		p := NewPlacer(grid, rand.New(rand.NewSource(seed)), FoodWeights{})
		obstacles, ok := p.PlaceObstacles(5, spawn, snake, 4)
		if !ok || len(obstacles) != 5 {
			t.Fatalf("seed %d: PlaceObstacles() = %d, %v, expected 5, true", seed, len(obstacles), ok)
		}

		seen := make(map[Position]bool)
		for _, o := range obstacles {
			if seen[o] {
				t.Errorf("seed %d: duplicate obstacle %v", seed, o)
			}
			seen[o] = true
			if o.DistSq(spawn) < 16 {
				t.Errorf("seed %d: obstacle %v inside safe zone", seed, o)
			}
			for _, seg := range snake {
				if o == seg {
					t.Errorf("seed %d: obstacle %v on the snake", seed, o)
				}
			}
		}
	}
}

func TestPlaceObstaclesPartial(t *testing.T) {
	// Every cell of a 5x5 grid is within radius 4 of its center.
	grid := Grid{Width: 5, Height: 5}
	p := NewPlacer(grid, rand.New(rand.NewSource(3)), FoodWeights{})

	obstacles, ok := p.PlaceObstacles(5, grid.Center(), nil, 4)
	if ok {
		t.Error("PlaceObstacles() reported success with no valid cells")
	}
	if len(obstacles) != 0 {
		t.Errorf("len(obstacles) = %d, expected 0", len(obstacles))
	}
}

func TestSessionProceedsWithPartialObstacles(t *testing.T) {
	rules := DefaultRules()
	rules.Grid = Grid{Width: 7, Height: 7}
	rules.ObstacleCount = 100
	s := newTestSession(t, rules, &memStore{})
	s.HandleAction(core.ActionStartOrRestart)

	if s.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", s.State())
	}
	if len(s.obstacles) >= 100 {
		t.Errorf("len(obstacles) = %d, expected a partial set", len(s.obstacles))
	}
	if s.food == nil {
		t.Error("no food placed")
	}
}

func TestBoardIsOccupied(t *testing.T) {
	b := Board{
		Snake:     []Position{{X: 1, Y: 1}},
		Obstacles: []Position{{X: 2, Y: 2}},
		Food:      &Food{Pos: Position{X: 3, Y: 3}},
	}
	tests := []struct {
		name  string
		p     Position
		check Occupancy
		want  bool
	}{
		{"snake", Position{X: 1, Y: 1}, Occupancy{Snake: true}, true},
		{"snake unchecked", Position{X: 1, Y: 1}, Occupancy{Obstacles: true, Food: true}, false},
		{"obstacle", Position{X: 2, Y: 2}, Occupancy{Obstacles: true}, true},
		{"food", Position{X: 3, Y: 3}, Occupancy{Food: true}, true},
		{"empty", Position{X: 4, Y: 4}, OccupancyAll, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsOccupied(tt.p, tt.check); got != tt.want {
				t.Errorf("IsOccupied(%v) = %v, expected %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(400, 400, 20)
	if g.Width != 20 || g.Height != 20 || g.Cells() != 400 {
		t.Errorf("NewGrid(400, 400, 20) = %+v, expected 20x20", g)
	}
	if g.Center() != (Position{X: 10, Y: 10}) {
		t.Errorf("Center() = %v, expected (10,10)", g.Center())
	}
}
