package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores",
	Long: `Display the top scores for a difficulty board (easy, normal, hard or
fixed). Without a board, shows totals for every board.

Examples:
  pacman scores
  pacman scores hard
  pacman scores normal --limit 20
  pacman scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score on the board")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail(os.Stderr, "opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			fail(os.Stderr, "--clear needs a board")
		}
		printAllStats(store)
		return
	}

	board, err := config.ParseDifficulty(args[0])
	if err != nil {
		fail(os.Stderr, "%v", err)
	}

	if flagScoresClear {
		if err := store.ClearScores(string(board)); err != nil {
			fail(os.Stderr, "clearing scores: %v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", board)
		return
	}

	printBoard(store, board)
}

func printBoard(store *storage.Store, board config.DifficultyPreset) {
	scores, err := store.TopScores(string(board), flagScoresLimit)
	if err != nil {
		fail(os.Stderr, "retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", board)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pacman play --difficulty %s' to set the first high score!\n", board)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %s\n",
			i+1, e.Player, e.Score, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(string(board)); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Best level: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}
}

func printAllStats(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fail(os.Stderr, "retrieving stats: %v", err)
	}

	fmt.Println("Score boards")
	fmt.Println()
	fmt.Printf("  %-7s  %-6s  %-8s  %-8s  %-5s  %s\n", "Board", "Games", "Best", "Average", "Level", "Last played")
	fmt.Printf("  %-7s  %-6s  %-8s  %-8s  %-5s  %s\n", "-----", "-----", "----", "-------", "-----", "-----------")
	for _, board := range config.Presets {
		s, ok := all[string(board)]
		if !ok || s.GamesCount == 0 {
			fmt.Printf("  %-7s  %-6d  %-8s  %-8s  %-5s  %s\n", board, 0, "-", "-", "-", "-")
			continue
		}
		fmt.Printf("  %-7s  %-6d  %-8d  %-8.0f  %-5d  %s\n",
			board, s.GamesCount, s.HighScore, s.AvgScore, s.BestLevel, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'pacman scores <board>' for the top scores.")
}
