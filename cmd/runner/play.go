package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/audio"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagSFX    bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play <id>",
	Short: "Play a variant",
	Long: `Start playing the specified runner variant.

Controls:
  Left/Right, A/D, H/L   - Change lane
  Up/W/K/Space           - Jump
  Down/S/J               - Slide (hold by tapping repeatedly)
  Enter                  - Start run
  P/Esc                  - Pause
  R                      - Restart (paused or after game over)
  B                      - Back to title
  Q/Ctrl+C               - Quit

Difficulty options:
  easy   - Fewer obstacles, wider pickup radius
  normal - Default obstacle density
  hard   - Dense obstacles, higher top speed
  fixed  - No speed ramp, stays at the base speed

Examples:
  runner play runner
  runner play runner --difficulty hard --biome sunset
  runner play runner_classic --speed 150
  runner play runner --sfx
  runner play runner --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagSFX, "sfx", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound effect volume, 0-1")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := ensureGame(gameID); err != nil {
		return err
	}
	if err := validateGameFlags(gameID); err != nil {
		return err
	}
	if err := validateVolume(flagVolume); err != nil {
		return err
	}
	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Continue without storage - the game still works, records are just not kept
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var sink tui.EventSink
	if flagSFX {
		player := audio.New(logger.WithPrefix("audio"), flagVolume)
		if player.Init() == nil {
			defer player.Close()
			sink = player
		}
	}

	if _, err := tui.Run(game, store, runtimeConfig(), sink, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
