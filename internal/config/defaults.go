package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration.
// It matches defaults/snake.yaml and is used when the embedded file is unusable.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			CanvasWidth:  400,
			CanvasHeight: 400,
			TileSize:     20,
		},
		Speed: SpeedConfig{
			InitialMs:   150,
			MinMs:       60,
			Threshold:   50,
			StepMs:      10,
			BoostFactor: 0.7,
			SlowFactor:  1.4,
		},
		Obstacles: ObstacleConfig{
			Count:          5,
			SafeZoneRadius: 4,
		},
		PowerUps: PowerUpConfig{
			DurationMs: 8000,
		},
		Food: FoodConfig{
			Weights: FoodWeights{Ghost: 0.08, Bonus: 0.10, Slow: 0.12},
			Points:  FoodPoints{Standard: 10, Bonus: 50, Ghost: 20, Slow: 5},
		},
		Storage: StorageConfig{
			HighScoreKey: "snake.high_score",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
