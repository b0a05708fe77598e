package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-deluxe/internal/config"
	"github.com/vovakirdan/snake-deluxe/internal/core"
	"github.com/vovakirdan/snake-deluxe/internal/games/snake"
	"github.com/vovakirdan/snake-deluxe/internal/platform/tui"
	"github.com/vovakirdan/snake-deluxe/internal/storage"
)

var (
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Snake.

Controls:
  Arrows/WASD  - Move
  Enter/Space  - Start or restart
  P            - Pause/resume
  ?            - Toggle help
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Food:
  ()  standard  +10, grows
  $$  bonus     +50, grows, speed boost
  ??  ghost     +20, pass through walls, yourself and obstacles
  ~~  slow      +5, slows the game down

Difficulty options:
  easy   - Slower start, fewer obstacles
  normal - Values from the config
  hard   - Faster start, twice the obstacles

Examples:
  snake play
  snake play --difficulty easy
  snake play --config ./my-snake.yaml
  snake play --log snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the logging flags on cmd; the root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file (logs are discarded otherwise)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rcfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rcfg.ScreenW = w
		rcfg.ScreenH = h
	}

	rcfg.Seed = flagSeed
	if rcfg.Seed == 0 {
		rcfg.Seed = time.Now().UnixNano()
	}

	opts := snake.Options{
		Rules:  snake.RulesFromConfig(cfg),
		Rand:   rand.New(rand.NewSource(rcfg.Seed)),
		Logger: logger,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
	} else {
		defer store.Close()
		opts.HighScores = storage.KeyedHighScore{Store: store, Key: cfg.Storage.HighScoreKey}
		opts.Recorder = store
	}

	logger.Info("starting", "seed", rcfg.Seed, "grid", fmt.Sprintf("%dx%d", cfg.Grid.TilesX(), cfg.Grid.TilesY()),
		"difficulty", flagDifficulty)

	session := snake.NewSession(opts)
	if err := tui.Run(session, rcfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if session.HighScore() > 0 {
		fmt.Printf("High score: %d\n", session.HighScore())
	}
}

// loadConfig resolves the difficulty flag and loads the validated config.
func loadConfig() (config.SnakeConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	return config.Load(flagConfig, preset)
}

// newLogger returns a logger writing to path, or a discarding logger when
// path is empty. The alt screen owns stdout, so logs never go there.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	if path == "" {
		logger := log.New(io.Discard)
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, func() { f.Close() }, nil
}
