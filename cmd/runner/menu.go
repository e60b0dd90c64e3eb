package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/audio"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant, then pick the
starting biome and difficulty. Press B on the title screen of a run to
return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change an option
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30 --sfx
  runner menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
	menuCmd.Flags().BoolVar(&flagSFX, "sfx", false, "Play sound effects")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound effect volume, 0-1")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := validateVolume(flagVolume); err != nil {
		return err
	}
	applyGameFlags()

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

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		info := findGame(menuResult.GameID)
		if info == nil {
			return nil
		}
		if err := validateGameFlags(info.ID); err != nil {
			return err
		}

		opts, quit, err := tui.RunRunnerSetup(info.Title, cfg)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if opts == nil {
			continue
		}

		game, err := registry.Create(info.ID)
		if err != nil {
			logger.Error("creating game", "game", info.ID, "error", err)
			continue
		}
		if rg, ok := game.(*runner.Game); ok {
			rg.Configure(*opts)
		}

		cfg.Seed = seedOrNow(flagSeed)
		back, err := tui.Run(game, store, cfg, sink, logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}

func findGame(id string) *registry.GameInfo {
	for _, g := range registry.List() {
		if g.ID == id {
			return &g
		}
	}
	return nil
}
