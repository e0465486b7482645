// pixeldash is a side-scrolling platformer that runs in the terminal.
//
// Usage:
//
//	pixeldash list                    - List available levels
//	pixeldash play [level]            - Play a level (default: lost-coins)
//	pixeldash menu                    - Pick levels interactively
//	pixeldash levels validate [dir]   - Check level files
//	pixeldash scores [level]          - Show best runs
//	pixeldash serve                   - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Display frame rate (default: 60)
//	--db <path>           - Run history database (default: ~/.pixeldash/runs.db)
//	--config <path>       - Custom tuning YAML
//	--difficulty <name>   - easy, normal or hard
//	--levels <dir>        - Extra level directory (default: ~/.pixeldash/levels)
//	--log-file <path>     - Log destination while the terminal UI runs
//	--debug               - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-dash/internal/config"
	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/games/platformer"
	"github.com/vovakirdan/pixel-dash/internal/games/platformer/levels"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogFile    string
	flagDebug      bool
)

// catalog holds every playable level by ID after startup.
var catalog = map[string]levels.Level{}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixeldash",
	Short: "Pixel Dash - a tiny platformer for your terminal",
	Long: `Pixel Dash is a side-scrolling platformer played in the terminal.
Run right, jump over spikes, stomp enemies, grab the coins and reach the flag.

Available commands:
  list     - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - Level file tools
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  pixeldash play
  pixeldash play warmup --difficulty easy
  pixeldash menu --levels ./my-levels
  pixeldash serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	defaultLevels := ""
	if home := config.HomeDir(); home != "" {
		defaultLevels = filepath.Join(home, "levels")
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Display frame rate (the simulation always steps at 60 Hz)")
	pf.StringVar(&flagDBPath, "db", "~/.pixeldash/runs.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+strings.Join(presetNames(), ", "))
	pf.StringVar(&flagLevelsDir, "levels", defaultLevels, "Directory with extra level files")
	pf.StringVar(&flagLogFile, "log-file", "~/.pixeldash/pixeldash.log", "Log file used while the terminal UI is running")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

func presetNames() []string {
	presets := config.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p)
	}
	return names
}

// setup applies the global flags and registers the level catalog.
func setup(_ *cobra.Command, _ []string) error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)

	lvls, err := levels.Catalog(flagLevelsDir)
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}
	for _, lvl := range lvls {
		catalog[lvl.ID] = lvl
	}

	var user []levels.Level
	for _, lvl := range lvls {
		if !lvl.Builtin() {
			user = append(user, lvl)
		}
	}
	platformer.RegisterLevels(user)

	return nil
}

// newLogger builds the application logger. While a terminal UI owns the
// screen, logs go to the log file instead of stderr.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	cleanup := func() {}

	if toFile {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixeldash",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, cleanup, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}
