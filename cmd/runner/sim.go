package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagSimRuns   int
	flagSimTicks  int
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim <id>",
	Short: "Let the autopilot play headless runs",
	Long: `Play runs without a terminal UI, steered by the built-in autopilot.

Run i uses seed --seed + i, so a fixed seed reproduces the whole batch.
Runs still going after --ticks are ended as if they crashed.
With --record the runs are saved to the scores database like real ones.

Examples:
  runner sim runner
  runner sim runner --runs 50 --seed 7
  runner sim runner_classic --difficulty hard --ticks 36000
  runner sim runner --record`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of runs")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*5, "Tick limit per run")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save runs and records to the scores database")
}

func runSim(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := ensureGame(gameID); err != nil {
		return err
	}
	if err := validateGameFlags(gameID); err != nil {
		return err
	}
	if flagSimRuns < 1 || flagSimTicks < 1 {
		return fmt.Errorf("--runs and --ticks must be positive")
	}
	applyGameFlags()

	var store *storage.Store
	if flagSimRecord {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer s.Close()
		store = s
	}

	rt := core.RuntimeConfig{TickRate: max(flagFPS, 1), Seed: seedOrNow(flagSeed)}
	results := make([]runner.SimResult, 0, flagSimRuns)
	for i := range flagSimRuns {
		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		rg, ok := game.(*runner.Game)
		if !ok {
			return fmt.Errorf("%s cannot be simulated", gameID)
		}
		rg.AttachRecords(tui.NewRecords(store, gameID, logger))

		run := rt
		run.Seed += int64(i)
		rg.Reset(run)
		if err := rg.Err(); err != nil {
			logger.Warn("using default config", "game", gameID, "error", err)
		}

		res, err := runner.Simulate(rg.Run(), runner.NewAutopilot(), run.TickSeconds(), flagSimTicks)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		logger.Debug("run finished", "run", i+1, "seed", run.Seed, "score", res.Score, "ticks", res.Ticks, "events", res.Events)

		if store != nil && res.Score > 0 {
			if _, err := store.SaveRun(storage.RunRecord{
				GameID:   gameID,
				Score:    res.Score,
				Coins:    res.Coins,
				Distance: res.Distance,
			}); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
		results = append(results, res)
	}

	printSimResults(gameID, rt, results)
	return nil
}

func printSimResults(gameID string, rt core.RuntimeConfig, results []runner.SimResult) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	top := 0
	for _, r := range results {
		top = max(top, r.Score)
	}
	barTop := max(top, 1)
	// Room for the fixed columns before the bar.
	barMax := max(width-56, 10)

	fmt.Printf("Simulation - %s (seed %d, %d fps)\n\n", gameID, rt.Seed, rt.TickRate)
	fmt.Printf("  %-4s  %-9s  %-5s  %-9s  %-8s  %s\n", "Run", "Score", "Coins", "Distance", "Time", "")
	var totalScore, totalCoins, crashes, bests int
	var totalDist float64
	for i, r := range results {
		outcome := "limit"
		if r.Crashed {
			outcome = "crash"
			crashes++
		}
		if r.NewBest {
			outcome += " *"
			bests++
		}
		secs := float64(r.Ticks) / float64(rt.TickRate)
		bar := strings.Repeat("█", r.Score*barMax/barTop)
		fmt.Printf("  %-4d  %-9s  %-5s  %-9s  %-8s  %s %s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			humanize.Comma(int64(r.Coins)),
			humanize.FormatFloat("#,###.#", r.Distance),
			humanize.FormatFloat("#,###.#", secs)+"s",
			bar, outcome,
		)
		totalScore += r.Score
		totalCoins += r.Coins
		totalDist += r.Distance
	}

	n := len(results)
	fmt.Println()
	fmt.Printf("Runs: %d   Crashes: %d   New bests: %d\n", n, crashes, bests)
	fmt.Printf("Avg score: %s   Top: %s   Coins: %s   Distance: %sm\n",
		humanize.Comma(int64(totalScore/n)),
		humanize.Comma(int64(top)),
		humanize.Comma(int64(totalCoins)),
		humanize.SIWithDigits(totalDist, 1, ""),
	)
}
