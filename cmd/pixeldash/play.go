package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-dash/internal/games/platformer"
	"github.com/vovakirdan/pixel-dash/internal/games/platformer/levels"
	"github.com/vovakirdan/pixel-dash/internal/platform/tui"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

const defaultLevel = "lost-coins"

var flagLevelFile string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level (default: lost-coins).

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump (hold for a higher jump); also starts a run
  Enter            - Start a run
  P                - Pause
  Ctrl+S           - Save a text screenshot
  Esc/Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer coyote and jump buffer windows, slower enemies
  normal - Configured values
  hard   - Shorter windows, faster enemies

Examples:
  pixeldash play
  pixeldash play warmup --difficulty easy
  pixeldash play --file ./my-level.yaml
  pixeldash play lost-coins --config ./floaty.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelFile, "file", "", "Play a level file instead of a registered level")
}

func runPlay(_ *cobra.Command, args []string) error {
	lvl, err := resolveLevel(args)
	if err != nil {
		return err
	}

	// Refuse levels that cannot be simulated
	if err := platformer.Preflight(lvl); err != nil {
		return err
	}

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

	logger.Info("starting", "level", lvl.ID, "difficulty", flagDifficulty)
	if err := tui.Run(platformer.New(lvl), runtimeConfig(), tui.Options{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// resolveLevel picks the level named on the command line.
func resolveLevel(args []string) (levels.Level, error) {
	if flagLevelFile != "" {
		return levels.NewLoader("").LoadFile(flagLevelFile)
	}

	id := defaultLevel
	if len(args) > 0 {
		id = args[0]
	}
	lvl, ok := catalog[id]
	if !ok {
		return levels.Level{}, fmt.Errorf("unknown level %q (run 'pixeldash list' to see available levels)", id)
	}
	return lvl, nil
}
