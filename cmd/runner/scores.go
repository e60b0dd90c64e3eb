package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [id]",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores and lifetime totals for the specified variant.
Without a variant, show a summary of every variant that has been played.

Examples:
  runner scores
  runner scores runner
  runner scores runner_classic --limit 25
  runner scores runner --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the runs, best score and coin total of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	if len(args) == 0 && flagScoresClear {
		return fmt.Errorf("--clear needs a variant id")
	}
	if len(args) == 1 {
		if err := ensureGame(args[0]); err != nil {
			return err
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return writeSummary(os.Stdout, store)
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("records cleared", "game", gameID)
		fmt.Printf("Cleared all records for %s.\n", game.Title())
		return nil
	}
	return writeScores(os.Stdout, store, gameID, game.Title(), flagScoresLimit)
}

// writeSummary prints one line of lifetime totals per played variant.
func writeSummary(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Fprintln(w, "Records")
	fmt.Fprintln(w)
	if len(all) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-6s  %-10s  %-8s  %-9s  %s\n", "Variant", "Runs", "Top run", "Coins", "Distance", "Last")
	fmt.Fprintf(w, "  %-16s  %-6s  %-10s  %-8s  %-9s  %s\n", "-------", "----", "-------", "-----", "--------", "----")
	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-16s  %-6s  %-10s  %-8s  %-9s  %s\n",
			info.Title,
			humanize.Comma(int64(st.GamesCount)),
			humanize.Comma(int64(st.HighScore)),
			humanize.Comma(int64(st.TotalCoins)),
			humanize.SIWithDigits(st.TotalDistance, 1, "m"),
			humanize.Time(st.LastPlayed),
		)
	}
	return nil
}

// writeScores prints the top runs and totals of one variant.
func writeScores(w io.Writer, store *storage.Store, gameID, title string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'runner play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %-9s  %s\n", "Rank", "Score", "Coins", "Distance", "When")
	fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %-9s  %s\n", "----", "-----", "-----", "--------", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10s  %-6s  %-9s  %s\n",
			i+1,
			humanize.Comma(int64(entry.Score)),
			humanize.Comma(int64(entry.Coins)),
			humanize.FormatFloat("#,###.#", entry.Distance),
			humanize.Time(entry.CreatedAt),
		)
	}

	fmt.Fprintln(w)
	best, err := store.BestScore(gameID)
	if err != nil {
		logger.Warn("could not read best score", "game", gameID, "error", err)
	} else {
		fmt.Fprintf(w, "Best: %s\n", humanize.Comma(int64(best)))
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Fprintf(w, "Runs: %s   Coins: %s   Distance: %sm\n",
			humanize.Comma(int64(stats.GamesCount)),
			humanize.Comma(int64(stats.TotalCoins)),
			humanize.SIWithDigits(stats.TotalDistance, 1, ""),
		)
	}
	return nil
}
