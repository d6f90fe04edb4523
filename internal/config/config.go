// Package config provides YAML-based configuration loading for Puff.
// Settings come from a file found along a fixed search order, with
// embedded defaults as the final fallback.
package config

import (
	"github.com/puffgame/puff/internal/core"
)

// Config is the root configuration, mirroring puff.yaml.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Input   InputConfig   `yaml:"input"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Scene   SceneConfig   `yaml:"scene"`
}

// GameConfig tunes the simulation loop.
type GameConfig struct {
	FPS int `yaml:"fps"` // Simulation ticks per second
}

// InputConfig tunes key handling.
type InputConfig struct {
	// HoldTicks is how many ticks a direction stays held after its last
	// press. Terminals deliver no key-release events, so holds are kept
	// alive by auto-repeat.
	HoldTicks int `yaml:"hold_ticks"`
}

// LevelsConfig locates level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// StorageConfig locates the results database. A leading ~ expands to
// the home directory.
type StorageConfig struct {
	Database string `yaml:"database"`
}

// SceneConfig selects the spatial index used for static props.
type SceneConfig struct {
	Index    string  `yaml:"index"`     // "flat" or "grid"
	GridCell float64 `yaml:"grid_cell"` // Grid cell size in world units
}

// Normalize clamps nonsensical values back to their defaults, so a
// hand-edited config cannot break the game loop.
func (c *Config) Normalize() {
	def := Default()
	if c.Game.FPS < 10 || c.Game.FPS > 240 {
		c.Game.FPS = def.Game.FPS
	}
	if c.Input.HoldTicks <= 0 {
		c.Input.HoldTicks = def.Input.HoldTicks
	}
	if c.Levels.Dir == "" {
		c.Levels.Dir = def.Levels.Dir
	}
	if c.Storage.Database == "" {
		c.Storage.Database = def.Storage.Database
	}
	if c.Scene.Index != string(core.SceneFlat) && c.Scene.Index != string(core.SceneGrid) {
		c.Scene.Index = def.Scene.Index
	}
	if c.Scene.GridCell <= 0 {
		c.Scene.GridCell = def.Scene.GridCell
	}
}

// Runtime converts the file configuration into the runtime settings
// screens receive, sized to the given terminal dimensions. Non-positive
// dimensions keep the defaults.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if screenW > 0 {
		rc.ScreenW = screenW
	}
	if screenH > 0 {
		rc.ScreenH = screenH
	}
	rc.TickRate = c.Game.FPS
	rc.HoldTicks = c.Input.HoldTicks
	rc.LevelsDir = c.Levels.Dir
	rc.Scene = core.SceneIndex(c.Scene.Index)
	rc.GridCell = c.Scene.GridCell
	return rc
}
