// mazehunt is a terminal maze-chase arcade game.
//
// Usage:
//
//	mazehunt play             - Play the game
//	mazehunt scores           - Show recorded high scores
//	mazehunt simulate         - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.mazehunt/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazehunt",
	Short: "Mazehunt - A maze-chase arcade game for your terminal",
	Long: `Mazehunt is a terminal arcade game. Hunt down the critters scattered
through a procedurally generated maze while a pursuer hunts you.

Available commands:
  play      - Start a game
  scores    - View recorded high scores
  simulate  - Run a deterministic headless simulation

Examples:
  mazehunt play
  mazehunt play --seed 42
  mazehunt scores
  mazehunt simulate --ticks 600`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazehunt/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
