package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puffgame/puff/internal/platform/tui"
	"github.com/puffgame/puff/internal/storage"
)

var scoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse stored results",
	Long: `Browse the recorded runs in an interactive table, one view per level
plus a best-runs view across all levels.

With --plain a per-level summary is printed to stdout instead, for
piping and quick checks.

Examples:
  puff scores
  puff scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&scoresPlain, "plain", false, "Print a plain summary instead of the interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := mustConfig()

	store, err := storage.Open(cfg.Storage.Database)
	if err != nil {
		logger.Fatal("cannot open results database", "error", err)
	}
	defer store.Close()

	if scoresPlain {
		printStats(store)
		return
	}

	width, height := terminalSize()
	if err := tui.RunResults(store, width, height); err != nil {
		logger.Fatal("terminal error", "error", err)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.AllLevelStats()
	if err != nil {
		logger.Fatal("cannot read results", "error", err)
	}
	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Run 'puff play' to set the first one!")
		return
	}

	fmt.Printf("  %-20s  %5s  %6s  %8s  %s\n", "Level", "Runs", "Clears", "Best", "Last played")
	fmt.Printf("  %-20s  %5s  %6s  %8s  %s\n", "-----", "----", "------", "----", "-----------")
	for _, st := range stats {
		best := "-"
		if st.BestTicks > 0 {
			best = fmt.Sprintf("%.1fs", storage.Result{Ticks: st.BestTicks}.Duration().Seconds())
		}
		fmt.Printf("  %-20s  %5d  %6d  %8s  %s\n",
			trim(st.Level, 20), st.Runs, st.Clears, best,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
