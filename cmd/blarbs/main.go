// blarbs is a headless driver for the Blarbs stick arena.
//
// Usage:
//
//	blarbs list                  - List rule variants
//	blarbs layout                - Print the arena layout
//	blarbs simulate              - Run a game headlessly
//	blarbs replay <script.yaml>  - Run a replay script and check its expectations
//
// Global flags:
//
//	--seed <value>         - Set RNG seed for reproducible runs
//	--config <path>        - Path to a custom blarbs.yaml
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--log-level <level>    - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/blarbs/internal/game"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blarbs",
	Short: "Blarbs - flip sticks, close boxes, dodge the muncher",
	Long: `Blarbs drives the stick arena engine without a display.

Available commands:
  list      - Show the rule variants
  layout    - Print the arena and its stick layout
  simulate  - Play a game from a move string
  replay    - Run a YAML replay script

Examples:
  blarbs list
  blarbs layout --raw
  blarbs simulate --moves DDDLLD --no-chaser
  blarbs replay ./scripts/claim.yaml --dump`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom blarbs.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replayCmd)
}
