package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-dash/internal/games/platformer"
	"github.com/vovakirdan/pixel-dash/internal/games/platformer/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Level file tools",
}

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check every level file in a directory",
	Long: `Parse and validate every .yaml/.yml level file under dir (default: the
--levels directory). Each level is also checked against the configured tuning,
e.g. a patrol range narrower than an enemy is rejected.

Exits with status 1 when any file is invalid.

Examples:
  pixeldash levels validate
  pixeldash levels validate ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var errInvalidLevels = errors.New("invalid level files found")

func init() {
	levelsCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	dir := flagLevelsDir
	if len(args) > 0 {
		dir = args[0]
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("cannot read level directory: %w", err)
	}

	loader := levels.NewLoader(dir)
	problems, err := loader.Check()
	if err != nil {
		return err
	}
	for _, p := range problems {
		fmt.Printf("FAIL  %s: %v\n", p.Path, p.Err)
	}

	valid, err := loader.LoadAll()
	if err != nil {
		return err
	}
	ok, failed := 0, len(problems)
	for _, lvl := range valid {
		if err := platformer.Preflight(lvl); err != nil {
			fmt.Printf("FAIL  %s: %v\n", lvl.FilePath, err)
			failed++
			continue
		}
		ok++
		fmt.Printf("ok    %s (%s, %dx%d, %d coins, %d enemies)\n",
			lvl.FilePath, lvl.ID, lvl.Grid.Cols(), lvl.Grid.Rows(), len(lvl.Coins), len(lvl.Enemies))
	}

	fmt.Println()
	fmt.Printf("%d valid, %d invalid\n", ok, failed)
	if failed > 0 {
		return errInvalidLevels
	}
	return nil
}
