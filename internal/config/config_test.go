package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("parseSnake(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultGridSize(t *testing.T) {
	g := DefaultSnakeConfig().Grid
	if g.TilesX() != 20 || g.TilesY() != 20 {
		t.Errorf("default grid = %dx%d, expected 20x20", g.TilesX(), g.TilesY())
	}
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded defaults
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("LoadSnake() without files = %+v, expected defaults", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("obstacles:\n  count: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Obstacles.Count != 7 {
		t.Errorf("local config Obstacles.Count = %d, expected 7", cfg.Obstacles.Count)
	}
	if cfg.Speed.InitialMs != 150 {
		t.Errorf("partial config should keep defaults, Speed.InitialMs = %d", cfg.Speed.InitialMs)
	}

	// User config directory wins over local
	userDir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "snake.yaml"), []byte("obstacles:\n  count: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Obstacles.Count != 9 {
		t.Errorf("user config Obstacles.Count = %d, expected 9", cfg.Obstacles.Count)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  initial_ms: 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(%s) failed: %v", path, err)
	}
	if cfg.Speed.InitialMs != 200 {
		t.Errorf("Speed.InitialMs = %d, expected 200", cfg.Speed.InitialMs)
	}

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSnake() with missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed: [nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("LoadSnake() with malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		valid  bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"zero tile size", func(c *SnakeConfig) { c.Grid.TileSize = 0 }, false},
		{"grid too narrow", func(c *SnakeConfig) { c.Grid.CanvasWidth = 40 }, false},
		{"min above initial", func(c *SnakeConfig) { c.Speed.MinMs = 200 }, false},
		{"zero threshold", func(c *SnakeConfig) { c.Speed.Threshold = 0 }, false},
		{"negative factor", func(c *SnakeConfig) { c.Speed.BoostFactor = -1 }, false},
		{"negative obstacles", func(c *SnakeConfig) { c.Obstacles.Count = -1 }, false},
		{"zero duration", func(c *SnakeConfig) { c.PowerUps.DurationMs = 0 }, false},
		{"weights above one", func(c *SnakeConfig) { c.Food.Weights.Ghost = 0.9 }, false},
		{"empty key", func(c *SnakeConfig) { c.Storage.HighScoreKey = "" }, false},
		{"no obstacles", func(c *SnakeConfig) { c.Obstacles.Count = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		initialMs     int
		obstacleCount int
	}{
		{DifficultyEasy, 180, 3},
		{DifficultyNormal, 150, 5},
		{DifficultyHard, 120, 10},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			if cfg.Speed.InitialMs != tc.initialMs {
				t.Errorf("Speed.InitialMs = %d, expected %d", cfg.Speed.InitialMs, tc.initialMs)
			}
			if cfg.Obstacles.Count != tc.obstacleCount {
				t.Errorf("Obstacles.Count = %d, expected %d", cfg.Obstacles.Count, tc.obstacleCount)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should validate, got %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %q, %v, expected normal", p, err)
	}
	if p, err := ParseDifficulty("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(hard) = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty(nightmare) should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parseSnake(data)
	if err != nil {
		t.Fatalf("parseSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("round trip = %+v, expected defaults", cfg)
	}
}
