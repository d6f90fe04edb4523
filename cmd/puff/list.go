package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/puffgame/puff/internal/level"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels on disk",
	Long: `List the levels in the levels directory with their index, format
version and object counts. The index is what 'puff play' takes.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := mustConfig()

	paths, err := level.ListPaths(cfg.Levels.Dir)
	if err != nil {
		logger.Fatal("cannot list levels", "dir", cfg.Levels.Dir, "error", err)
	}
	if len(paths) == 0 {
		fmt.Printf("No levels in %s yet.\n", cfg.Levels.Dir)
		fmt.Println()
		fmt.Println("Run 'puff edit' to build the first one.")
		return
	}

	fmt.Printf("Levels in %s:\n\n", cfg.Levels.Dir)
	fmt.Printf("  %-3s  %-20s  %-4s  %5s  %5s  %5s  %4s  %4s\n",
		"#", "Name", "Ver", "Walls", "Pumps", "Mines", "Gems", "Goal")
	fmt.Printf("  %-3s  %-20s  %-4s  %5s  %5s  %5s  %4s  %4s\n",
		"-", "----", "---", "-----", "-----", "-----", "----", "----")

	for i, path := range paths {
		header, err := level.ReadHeader(path)
		if err != nil {
			fmt.Printf("  %-3d  %s: %v\n", i, filepath.Base(path), err)
			continue
		}
		lvl, err := level.Load(path)
		if err != nil {
			fmt.Printf("  %-3d  %-20s  %-4s  unreadable\n", i, trim(header.Name, 20), header.Version)
			continue
		}
		goal := "-"
		if lvl.Finish != nil {
			goal = strconv.Itoa(lvl.Finish.GemsRequired)
		}
		fmt.Printf("  %-3d  %-20s  %-4s  %5d  %5d  %5d  %4d  %4s\n",
			i, trim(header.Name, 20), header.Version,
			len(lvl.Walls), len(lvl.Pumps), len(lvl.Mines), len(lvl.Gems), goal)
	}

	fmt.Println()
	fmt.Println("Run 'puff play <#>' to play one.")
}

// trim cuts s to at most n runes, marking the cut with an ellipsis.
func trim(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
