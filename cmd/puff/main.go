// puff is a terminal arcade game about a fragile ball under thrust.
//
// Usage:
//
//	puff                - Title screen with the level list
//	puff play [index]   - Start a level directly
//	puff edit [file]    - Open the level editor
//	puff list           - List the levels on disk
//	puff scores         - Browse stored results
//	puff serve          - Serve the game over SSH
//	puff config         - Print the configuration
//
// Global flags:
//
//	--config <path> - Use a specific config file
//	--levels <dir>  - Levels directory (default: levels)
//	--db <path>     - Results database (default: ~/.puff/results.db)
//	--fps <rate>    - Tick rate (default: 60)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/puffgame/puff/internal/app"
	"github.com/puffgame/puff/internal/assets"
	"github.com/puffgame/puff/internal/config"
	"github.com/puffgame/puff/internal/platform/tui"
	"github.com/puffgame/puff/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagLevels string
	flagDB     string
	flagFPS    int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "puff"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puff",
	Short: "Puff - keep a leaking ball alive and roll it home",
	Long: `Puff is a terminal arcade game. You steer a ball that deflates a
little with every move, dodge mines, collect gems and reach the flag
before the air runs out. Pumps along the way blow the ball back up.

Running puff without a command opens the title screen.

Controls:
  WASD/Arrows - Thrust
  Enter/Space - Confirm
  Shift+E     - Level editor
  Esc         - Back
  Q/Ctrl+C    - Quit

Examples:
  puff
  puff play 2
  puff edit levels/0.json
  puff serve --port 2222`,
}

func init() {
	// Assigned here rather than in the composite literal: the closure
	// refers to runScreen -> mustConfig -> rootCmd, which the compiler
	// rejects as an initialization cycle.
	rootCmd.Run = func(_ *cobra.Command, _ []string) {
		runScreen(app.OpenTitle())
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default: ./puff.yaml, then user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "levels", "Directory containing level files")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "~/.puff/results.db", "Path to results database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation ticks per second)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// mustConfig loads the configuration, applies flag overrides and exits
// on failure.
func mustConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("levels") {
		cfg.Levels.Dir = flagLevels
	}
	if pf.Changed("db") {
		cfg.Storage.Database = flagDB
	}
	if pf.Changed("fps") {
		cfg.Game.FPS = flagFPS
		cfg.Normalize()
	}
	return cfg
}

// terminalSize probes stdout for the terminal dimensions, falling back
// to 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openStore opens the results database, or returns nil to play without
// recording.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return nil
	}
	return store
}

// runScreen starts the TUI on the screen the action names.
func runScreen(initial *app.Action) {
	cfg := mustConfig()

	width, height := terminalSize()
	rc := cfg.Runtime(width, height)

	store := openStore(cfg.Storage.Database)

	model, err := tui.NewModel(initial, assets.Builtin(), store, rc)
	if err != nil {
		if store != nil {
			store.Close()
		}
		logger.Fatal("cannot start", "error", err)
	}

	runErr := tui.Run(model)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		logger.Fatal("terminal error", "error", runErr)
	}
}
