package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vecgeom/internal/platform/tui"
	"github.com/vovakirdan/vecgeom/internal/registry"
	"github.com/vovakirdan/vecgeom/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run <sim>",
	Short: "Run a simulation",
	Long: `Run the specified simulation in the terminal.

Controls:
  Up/Down    - Speed up / slow down (bounce), switch axis (orbit)
  Space/P    - Pause
  R          - Restart
  Ctrl+S     - Save a screenshot to ~/.vecgeom/screenshots
  B/Esc      - Leave
  Q/Ctrl+C   - Quit

The run is recorded in the history database when it reaches the scene's
tick budget, or when you leave it early.

Examples:
  vecgeom run bounce
  vecgeom run orbit --speed slow
  vecgeom run bounce --scene ./my-scene.yaml
  vecgeom run bounce --scene-name lab`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	addSceneFlags(runCmd)
}

func runRun(_ *cobra.Command, args []string) {
	simID := args[0]

	if !registry.Exists(simID) {
		fmt.Fprintf(os.Stderr, "Error: unknown simulation %q\n", simID)
		fmt.Fprintln(os.Stderr, "Run 'vecgeom list' to see available simulations.")
		os.Exit(1)
	}

	scene, err := loadScene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sim, err := registry.CreateConfigured(simID, scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating simulation: %v\n", err)
		os.Exit(1)
	}

	// The simulation still runs without history.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}

	runErr := tui.Run(sim, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
