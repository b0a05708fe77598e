// snake is a terminal Snake game with power-ups, obstacles and a persistent
// high score.
//
// Usage:
//
//	snake                    - Play (same as snake play)
//	snake play               - Play a game
//	snake scores             - Show the best results
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal or hard
//	--seed <value>       - RNG seed for reproducible games
//	--db <path>          - Database path (default: ~/.snake/snake.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-deluxe/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake with power-ups, obstacles and a persistent high score.

Available commands:
  play     - Play a game (default)
  scores   - View the best results
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard
  snake scores --tui
  snake config > ~/.snake/configs/snake.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to the scores database")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
