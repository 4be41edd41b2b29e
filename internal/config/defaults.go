package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the hardcoded maze configuration, used when the
// embedded YAML cannot be parsed.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			Width:  16,
			Height: 10,
		},
		Strategy: "prim",
		Seed:     0,
		Render: RenderConfig{
			Color:      true,
			WallColor:  "240",
			StartColor: "46",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
