package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Puff configuration.
// Search order: customPath -> ./puff.yaml -> $XDG_CONFIG_HOME/puff/config.yaml -> embedded default.
// Values missing from a file keep their defaults; invalid values are
// clamped back to them. Only an explicit customPath fails loudly.
func Load(customPath string) (Config, error) {
	// Explicit path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try the working directory
	if data, err := os.ReadFile("puff.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Try the user config directory
	if userCfg := userConfigPath(); userCfg != "" {
		if data, err := os.ReadFile(userCfg); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultYAML); err == nil {
		return cfg, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

// parse unmarshals YAML over the defaults, so partial files work, and
// clamps the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// the user config directory is unavailable.
func userConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "puff", "config.yaml")
}
