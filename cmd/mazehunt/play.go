package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkulagin/mazehunt/internal/assets"
	"github.com/vkulagin/mazehunt/internal/config"
	"github.com/vkulagin/mazehunt/internal/core"
	"github.com/vkulagin/mazehunt/internal/game"
	"github.com/vkulagin/mazehunt/internal/platform/tui"
	"github.com/vkulagin/mazehunt/internal/registry"
	"github.com/vkulagin/mazehunt/internal/storage"
)

var (
	flagConfig string
	flagAtlas  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  WASD/Arrows  - Move
  Mouse        - Hold to steer toward the pointer
  Enter/Space  - Start / confirm
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  mazehunt play
  mazehunt play --seed 42
  mazehunt play --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagAtlas, "atlas", "", "Path to custom sprite atlas YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazehunt",
	})

	// Load game config
	gameCfg, err := config.LoadGame(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Load sprite atlas; a missing or malformed sprite is fatal
	atlas, err := assets.Load(flagAtlas)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sprite atlas: %v\n", err)
		os.Exit(1)
	}

	game.SetParams(gameCfg.Params())
	game.SetAtlas(atlas)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	g, err := registry.Create("mazehunt")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
