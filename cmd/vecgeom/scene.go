package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vecgeom/internal/config"
	"github.com/vovakirdan/vecgeom/internal/core"
)

var (
	flagScenePath string
	flagSceneName string
	flagSpeed     string
)

// addSceneFlags registers the scene selection flags on cmd.
func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagScenePath, "scene", "", "Path to a scene YAML file")
	cmd.Flags().StringVar(&flagSceneName, "scene-name", config.DefaultSceneName, "Scene name to look up in ~/.vecgeom/scenes and ./scenes")
	cmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast (default: the scene's)")
}

// loadScene loads the scene selected by the flags and applies --speed.
func loadScene() (config.Scene, error) {
	sc, err := config.LoadScene(flagSceneName, flagScenePath)
	if err != nil {
		return config.Scene{}, err
	}

	if flagSpeed != "" {
		preset, err := config.ParseSpeedPreset(flagSpeed)
		if err != nil {
			return config.Scene{}, err
		}
		config.ApplySpeedPreset(&sc, preset)
	}

	logger.Debug("scene loaded", "name", sc.Name, "segments", len(sc.Segments), "circles", len(sc.Circles))
	return sc, nil
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}
