package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-dash/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and any levels found in the --levels directory.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		maxIDLen = max(maxIDLen, len(info.ID))
	}

	fmt.Printf("  %-*s  %-9s  %-6s  %-7s  %s\n", maxIDLen, "ID", "Size", "Coins", "Source", "Title")
	fmt.Printf("  %-*s  %-9s  %-6s  %-7s  %s\n", maxIDLen, "--", "----", "-----", "------", "-----")

	for _, info := range infos {
		size, coins, source := "?", "?", "user"
		if lvl, ok := catalog[info.ID]; ok {
			size = fmt.Sprintf("%dx%d", lvl.Grid.Cols(), lvl.Grid.Rows())
			coins = fmt.Sprintf("%d", len(lvl.Coins))
			if lvl.Builtin() {
				source = "builtin"
			}
		}
		fmt.Printf("  %-*s  %-9s  %-6s  %-7s  %s\n", maxIDLen, info.ID, size, coins, source, info.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pixeldash play <id>' to play a level.")
}
