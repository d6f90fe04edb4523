package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/puffgame/puff/internal/config"
)

var configDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the effective configuration as YAML, after the config file and
flag overrides are applied. With --default the built-in defaults are
printed instead, ready to seed a config file:

  puff config --default > puff.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configDefault, "default", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if configDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := mustConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		logger.Fatal("cannot encode configuration", "error", err)
	}
	os.Stdout.Write(data)
}
