package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadScene loads a scene by name.
// Search order: customPath -> ~/.vecgeom/scenes/<name>.yaml ->
// ./scenes/<name>.yaml -> embedded default (default scene only).
func LoadScene(name, customPath string) (Scene, error) {
	// Try custom path first
	if customPath != "" {
		return loadFile(customPath)
	}
	if name == "" {
		name = DefaultSceneName
	}
	filename := name + ".yaml"

	// Try user scene directory
	if userPath := userScenePath(filename); userPath != "" {
		if sc, err := loadFile(userPath); !errors.Is(err, fs.ErrNotExist) {
			return sc, err
		}
	}

	// Try local scenes directory
	if sc, err := loadFile(filepath.Join("scenes", filename)); !errors.Is(err, fs.ErrNotExist) {
		return sc, err
	}

	if name != DefaultSceneName {
		return Scene{}, fmt.Errorf("config: scene %q not found", name)
	}

	// Use embedded default YAML
	sc, err := ParseScene(defaultSceneYAML)
	if err != nil {
		return DefaultScene(), nil // Fallback to hardcoded if embed fails
	}
	return sc, nil
}

func loadFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: failed to read scene %s: %w", path, err)
	}
	sc, err := ParseScene(data)
	if err != nil {
		return Scene{}, fmt.Errorf("config: failed to parse scene %s: %w", path, err)
	}
	return sc, nil
}

// userScenePath returns the path to a user scene file, or empty if home is unavailable.
func userScenePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vecgeom", "scenes", filename)
}

// ApplySpeedPreset overrides the scene's speed preset.
func ApplySpeedPreset(sc *Scene, preset SpeedPreset) {
	sc.Run.Speed = preset
}
