package main

import (
	"github.com/spf13/cobra"

	"github.com/puffgame/puff/internal/app"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the level editor",
	Long: `Open the level editor, on an existing level file or on a blank one.

Ctrl+S always writes to the next free slot in the levels directory, so
editing an existing file forks it rather than touching the original.

Examples:
  puff edit
  puff edit levels/0.json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		runScreen(app.OpenEditor(path))
	},
}
