package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-dash/internal/platform/tui"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start Pixel Dash in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
When you leave a level with Esc you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - Best runs
  Q            - Quit

Examples:
  pixeldash menu
  pixeldash menu --fps 30
  pixeldash menu --db ./runs.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, cleanup, err := newLogger(true)
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
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

		game, err := registry.Create(menuResult.LevelID)
		if err != nil {
			logger.Error("cannot create level", "level", menuResult.LevelID, "error", err)
			continue
		}

		// Back in the game returns here, quit ends the loop
		model, err := tui.RunLevel(game, cfg, tui.Options{Store: store, Logger: logger})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if model.IsQuitting() {
			return nil
		}
	}
}
