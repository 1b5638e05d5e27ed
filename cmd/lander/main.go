// lander is a terminal lunar-lander arcade game.
//
// Usage:
//
//	lander                   - Play (same as "lander play")
//	lander play              - Play in this terminal
//	lander serve             - Start SSH server for remote play
//	lander config            - Print the default configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible obstacles and stars
//	--config <path>     - Load constants from a YAML file
//	--log-file <path>   - Append session logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Galactic Lander - land on the planet, dodge the meteors",
	Long: `Galactic Lander is a terminal arcade game. Steer the lander past
drifting meteors and touch down upright and slow. Landings closer to
the center score more.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  lander
  lander play --seed 42
  lander play --config ./lander.yaml --log-file lander.log
  lander serve --ssh :2222
  lander config > ~/.lander/lander.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (discarded if empty)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
