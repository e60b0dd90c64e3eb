// runner is a three-lane endless runner played in the terminal.
//
// Usage:
//
//	runner list              - List available variants
//	runner play <id>         - Play a variant
//	runner menu              - Start menu to pick a variant interactively
//	runner serve             - Start SSH server for remote play
//	runner scores [id]       - Show high scores for a variant
//	runner sim <id>          - Let the autopilot play headless runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	// Game flags shared by play, menu and sim
	flagConfig     string
	flagDifficulty string
	flagSpeed      int
	flagBiome      string
	flagCharacter  string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "runner"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "TUI Runner - an endless runner in your terminal",
	Long: `TUI Runner is a three-lane endless runner for the terminal.
Dodge blocks, spikes and barriers, grab coins and powerups, and see how far
you get before the speed catches up with you.

Available commands:
  list     - Show all available variants
  play     - Play a specific variant directly
  menu     - Interactive picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless autopilot runs

Examples:
  runner list
  runner play runner
  runner play runner_classic --difficulty hard
  runner menu
  runner serve --ssh :2222
  runner sim runner --runs 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// addGameFlags registers the tuning flags on a command that starts runs.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagSpeed, "speed", 0, "Speed multiplier in percent, 50-200 (0 = config value)")
	cmd.Flags().StringVar(&flagBiome, "biome", "", "Starting biome: cybercity, neonforest, spacestation, sunset")
	cmd.Flags().StringVar(&flagCharacter, "character", "", "Player character: cube, sphere, pyramid, star, crystal, neon")
}

// applyGameFlags hands the tuning flags to the runner before a game is reset.
func applyGameFlags() {
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	runner.SetSpeedPercent(flagSpeed)
	runner.SetStartBiome(flagBiome)
	runner.SetCharacter(flagCharacter)
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// seedOrNow returns seed, or a clock-based one when seed is 0.
func seedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func ensureGame(id string) error {
	if !registry.Exists(id) {
		return &unknownGameError{id: id}
	}
	return nil
}

// validateGameFlags rejects tuning flags that would otherwise be ignored
// silently when the game falls back to defaults.
func validateGameFlags(gameID string) error {
	if flagConfig != "" {
		if _, err := config.LoadRunner(gameID, flagConfig); err != nil {
			return err
		}
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagBiome != "" {
		if _, err := runner.ParseBiome(flagBiome); err != nil {
			return err
		}
	}
	if flagCharacter != "" {
		if _, err := runner.ParseCharacter(flagCharacter); err != nil {
			return err
		}
	}
	if flagSpeed != 0 && (flagSpeed < 50 || flagSpeed > 200) {
		return fmt.Errorf("speed %d%% out of range 50-200", flagSpeed)
	}
	return nil
}

// validateVolume rejects a sound volume outside 0-1.
func validateVolume(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("volume %g out of range 0-1", v)
	}
	return nil
}
