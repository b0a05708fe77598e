// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid      GridConfig     `yaml:"grid"`
	Speed     SpeedConfig    `yaml:"speed"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Food      FoodConfig     `yaml:"food"`
	Storage   StorageConfig  `yaml:"storage"`
}

// GridConfig defines the virtual canvas the tile grid is derived from.
type GridConfig struct {
	CanvasWidth  int `yaml:"canvas_width"`
	CanvasHeight int `yaml:"canvas_height"`
	TileSize     int `yaml:"tile_size"`
}

// TilesX returns the number of tile columns.
func (g GridConfig) TilesX() int {
	return g.CanvasWidth / g.TileSize
}

// TilesY returns the number of tile rows.
func (g GridConfig) TilesY() int {
	return g.CanvasHeight / g.TileSize
}

// SpeedConfig defines tick interval scaling.
type SpeedConfig struct {
	InitialMs   int     `yaml:"initial_ms"`
	MinMs       int     `yaml:"min_ms"`
	Threshold   int     `yaml:"threshold"`
	StepMs      int     `yaml:"step_ms"`
	BoostFactor float64 `yaml:"boost_factor"`
	SlowFactor  float64 `yaml:"slow_factor"`
}

// ObstacleConfig defines static obstacle generation.
type ObstacleConfig struct {
	Count          int `yaml:"count"`
	SafeZoneRadius int `yaml:"safe_zone_radius"`
}

// PowerUpConfig defines timed power-up effects.
type PowerUpConfig struct {
	DurationMs int `yaml:"duration_ms"`
}

// FoodConfig defines food kind probabilities and scoring.
type FoodConfig struct {
	Weights FoodWeights `yaml:"weights"`
	Points  FoodPoints  `yaml:"points"`
}

// FoodWeights are the spawn probabilities of the special food kinds.
// Standard food takes the remaining probability mass.
type FoodWeights struct {
	Ghost float64 `yaml:"ghost"`
	Bonus float64 `yaml:"bonus"`
	Slow  float64 `yaml:"slow"`
}

// FoodPoints are the score awards per food kind.
type FoodPoints struct {
	Standard int `yaml:"standard"`
	Bonus    int `yaml:"bonus"`
	Ghost    int `yaml:"ghost"`
	Slow     int `yaml:"slow"`
}

// StorageConfig defines persisted state keys.
type StorageConfig struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.TileSize <= 0:
		return fmt.Errorf("%w: grid.tile_size must be positive", ErrInvalidConfig)
	case c.Grid.TilesX() < 3 || c.Grid.TilesY() < 1:
		return fmt.Errorf("%w: grid must be at least 3x1 tiles, got %dx%d",
			ErrInvalidConfig, c.Grid.TilesX(), c.Grid.TilesY())
	case c.Speed.MinMs <= 0:
		return fmt.Errorf("%w: speed.min_ms must be positive", ErrInvalidConfig)
	case c.Speed.InitialMs < c.Speed.MinMs:
		return fmt.Errorf("%w: speed.initial_ms (%d) below speed.min_ms (%d)",
			ErrInvalidConfig, c.Speed.InitialMs, c.Speed.MinMs)
	case c.Speed.Threshold <= 0:
		return fmt.Errorf("%w: speed.threshold must be positive", ErrInvalidConfig)
	case c.Speed.StepMs < 0:
		return fmt.Errorf("%w: speed.step_ms must not be negative", ErrInvalidConfig)
	case c.Speed.BoostFactor <= 0 || c.Speed.SlowFactor <= 0:
		return fmt.Errorf("%w: speed factors must be positive", ErrInvalidConfig)
	case c.Obstacles.Count < 0 || c.Obstacles.SafeZoneRadius < 0:
		return fmt.Errorf("%w: obstacle settings must not be negative", ErrInvalidConfig)
	case c.PowerUps.DurationMs <= 0:
		return fmt.Errorf("%w: powerups.duration_ms must be positive", ErrInvalidConfig)
	case c.Food.Weights.Ghost < 0 || c.Food.Weights.Bonus < 0 || c.Food.Weights.Slow < 0:
		return fmt.Errorf("%w: food weights must not be negative", ErrInvalidConfig)
	case c.Food.Weights.Ghost+c.Food.Weights.Bonus+c.Food.Weights.Slow > 1:
		return fmt.Errorf("%w: food weights sum above 1", ErrInvalidConfig)
	case c.Storage.HighScoreKey == "":
		return fmt.Errorf("%w: storage.high_score_key must be set", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value into a preset.
// The empty string selects DifficultyNormal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialMs += 30
		cfg.Obstacles.Count = max(0, cfg.Obstacles.Count-2)
	case DifficultyHard:
		cfg.Speed.InitialMs = max(cfg.Speed.MinMs, cfg.Speed.InitialMs-30)
		cfg.Obstacles.Count *= 2
	}
}
