package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-dash/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best runs",
	Long: `Display the top runs for the given level, or a summary of every
played level when no level is given.

Examples:
  pixeldash scores
  pixeldash scores lost-coins
  pixeldash scores warmup --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}
	return printLevelScores(store, args[0])
}

func printLevelScores(store *storage.Store, levelID string) error {
	lvl, ok := catalog[levelID]
	if !ok {
		return fmt.Errorf("unknown level %q (run 'pixeldash list' to see available levels)", levelID)
	}

	runs, err := store.TopRuns(levelID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", lvl.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pixeldash play %s' to set the first record!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-13s  %-10s  %s\n", "Rank", "Score", "Coins", "Time", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-13s  %-10s  %s\n", "----", "-----", "-----", "----", "------", "------", "----")
	for i, r := range runs {
		result := "cleared"
		if !r.Won() {
			result = "game over"
			if r.DeathCause != "" {
				result = "died: " + r.DeathCause
			}
		}
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-6d  %-6s  %-8s  %-13s  %-10s  %s\n",
			i+1, r.Score, fmt.Sprintf("%d/%d", r.Coins, r.TotalCoins),
			fmt.Sprintf("%.1fs", r.PlayTime.Seconds()), result, player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, ok, err := store.BestTime(levelID); err == nil && ok {
		fmt.Printf("Fastest clear: %.1fs\n", best.Seconds())
	}
	if high, err := store.HighScore(levelID); err == nil {
		fmt.Printf("Best score: %d\n", high)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllLevelStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-5s  %-6s  %-6s  %-8s  %s\n", "Level", "Runs", "Clears", "Best", "Fastest", "Last played")
	fmt.Printf("  %-16s  %-5s  %-6s  %-6s  %-8s  %s\n", "-----", "----", "------", "----", "-------", "-----------")
	for _, id := range ids {
		st := all[id]
		fastest := "-"
		if st.BestTime > 0 {
			fastest = fmt.Sprintf("%.1fs", st.BestTime.Seconds())
		}
		fmt.Printf("  %-16s  %-5d  %-6d  %-6d  %-8s  %s\n",
			id, st.Runs, st.Clears, st.HighScore, fastest, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
