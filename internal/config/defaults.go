package config

import (
	_ "embed"
)

//go:embed defaults/puff.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game:    GameConfig{FPS: 60},
		Input:   InputConfig{HoldTicks: 12},
		Levels:  LevelsConfig{Dir: "levels"},
		Storage: StorageConfig{Database: "~/.puff/results.db"},
		Scene:   SceneConfig{Index: "flat", GridCell: 64},
	}
}

// DefaultYAML returns the embedded default YAML, ready to be written
// out as a starter config file.
func DefaultYAML() []byte {
	return defaultYAML
}
