package snake

import (
	"time"

	"github.com/vovakirdan/snake-deluxe/internal/config"
)

// Rules holds the tunable constants of a game.
type Rules struct {
	Grid            Grid
	Speed           SpeedRules
	ObstacleCount   int
	SafeZoneRadius  int
	PowerUpDuration time.Duration
	Weights         FoodWeights
	Points          FoodPoints
}

// SpeedRules controls the tick interval.
type SpeedRules struct {
	Initial     time.Duration // interval at score 0
	Min         time.Duration // lower bound on the interval
	Threshold   int           // points per step
	Step        time.Duration // interval reduction per step
	BoostFactor float64       // multiplier while speedBoost is active
	SlowFactor  float64       // multiplier while slowDown is active
}

// FoodWeights are the probabilities of the special food kinds.
type FoodWeights struct {
	Ghost float64
	Bonus float64
	Slow  float64
}

// kindFor maps a uniform sample in [0, 1) to a food kind.
func (w FoodWeights) kindFor(r float64) FoodKind {
	switch {
	case r < w.Ghost:
		return FoodGhost
	case r < w.Ghost+w.Bonus:
		return FoodBonus
	case r < w.Ghost+w.Bonus+w.Slow:
		return FoodSlow
	default:
		return FoodStandard
	}
}

// FoodPoints are the score awards per food kind.
type FoodPoints struct {
	Standard int
	Bonus    int
	Ghost    int
	Slow     int
}

// For returns the award for eating kind.
func (p FoodPoints) For(kind FoodKind) int {
	switch kind {
	case FoodBonus:
		return p.Bonus
	case FoodGhost:
		return p.Ghost
	case FoodSlow:
		return p.Slow
	default:
		return p.Standard
	}
}

// DefaultRules returns the rules built from the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultSnakeConfig())
}

// RulesFromConfig converts a validated configuration into game rules.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return Rules{
		Grid: NewGrid(cfg.Grid.CanvasWidth, cfg.Grid.CanvasHeight, cfg.Grid.TileSize),
		Speed: SpeedRules{
			Initial:     ms(cfg.Speed.InitialMs),
			Min:         ms(cfg.Speed.MinMs),
			Threshold:   cfg.Speed.Threshold,
			Step:        ms(cfg.Speed.StepMs),
			BoostFactor: cfg.Speed.BoostFactor,
			SlowFactor:  cfg.Speed.SlowFactor,
		},
		ObstacleCount:   cfg.Obstacles.Count,
		SafeZoneRadius:  cfg.Obstacles.SafeZoneRadius,
		PowerUpDuration: ms(cfg.PowerUps.DurationMs),
		Weights: FoodWeights{
			Ghost: cfg.Food.Weights.Ghost,
			Bonus: cfg.Food.Weights.Bonus,
			Slow:  cfg.Food.Weights.Slow,
		},
		Points: FoodPoints{
			Standard: cfg.Food.Points.Standard,
			Bonus:    cfg.Food.Points.Bonus,
			Ghost:    cfg.Food.Points.Ghost,
			Slow:     cfg.Food.Points.Slow,
		},
	}
}
