package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/galactic-lander/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.lander/lander.yaml or ./configs/lander.yaml and edit the
values; the game picks the first file it finds at startup.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
