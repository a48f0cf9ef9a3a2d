package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vecgeom/internal/platform/tui"
	"github.com/vovakirdan/vecgeom/internal/registry"
	"github.com/vovakirdan/vecgeom/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick simulations from an interactive menu",
	Long: `Start vecgeom in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a simulation.
When a simulation ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select simulation
  Tab          - History board
  Q            - Quit

Examples:
  vecgeom menu
  vecgeom menu --fps 60
  vecgeom menu --scene ./lab.yaml`,
	Run: runMenu,
}

func init() {
	addSceneFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	scene, err := loadScene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg, scene.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, hErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if hErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", hErr)
			}
			if goBack {
				continue
			}
			break
		}

		sim, err := registry.CreateConfigured(menuResult.SimID, scene)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating simulation: %v\n", err)
			continue
		}

		logger.Debug("simulation started", "sim", sim.ID())
		if err := tui.Run(sim, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
