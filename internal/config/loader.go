package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
// Files are decoded over the defaults, so they only need the keys they change.
func LoadMaze(customPath string) (MazeConfig, error) {
	cfg := DefaultMazeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("maze.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultMazeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "maze.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultMazeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}
