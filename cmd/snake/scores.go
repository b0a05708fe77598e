package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-deluxe/internal/core"
	"github.com/vovakirdan/snake-deluxe/internal/platform/tui"
	"github.com/vovakirdan/snake-deluxe/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresTUI    bool
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best results",
	Long: `Display the high score and the best recorded games.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --recent
  snake scores --tui
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to list")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest games instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game history (the high score is kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	highScore, err := store.HighScore(cfg.Storage.HighScoreKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if flagScoresClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Game history cleared.")
		return
	}

	if flagScoresTUI {
		size := core.DefaultConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			size.ScreenW, size.ScreenH = w, h
		}
		if err := tui.RunScoreboard(store, highScore, size.ScreenW, size.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title, list := "High Scores - Snake", store.TopResults
	if flagScoresRecent {
		title, list = "Recent Games - Snake", store.RecentResults
	}

	results, err := list(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-8s  %-7s  %s\n", "#", "Score", "Length", "Cause", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-8s  %-7s  %s\n", "----", "-----", "------", "-----", "----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-7d  %-6d  %-8s  %-7s  %s\n",
			i+1, r.Score, r.Length, r.Cause, r.Duration.Round(time.Second), r.EndedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", highScore)
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Games played: %d, average score: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
}
