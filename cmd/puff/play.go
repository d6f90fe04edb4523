package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/puffgame/puff/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play [index]",
	Short: "Play a level",
	Long: `Start a level directly, skipping the title screen.

Levels are numbered by their position in the sorted levels directory;
'puff list' shows the numbering. With no index the first level starts.

Examples:
  puff play
  puff play 2
  puff play 2 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	index := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			logger.Fatal("level index must be a non-negative number", "got", args[0])
		}
		index = n
	}
	runScreen(app.PlayLevel(index))
}
