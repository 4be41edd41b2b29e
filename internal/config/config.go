// Package config provides YAML-based maze configuration loading and size
// presets for the maze CLI.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// MaxDimension bounds the grid size accepted from configuration.
const MaxDimension = 1000

// MazeConfig contains all configuration for maze generation.
type MazeConfig struct {
	Grid     GridConfig   `yaml:"grid"`
	Strategy string       `yaml:"strategy"`
	Seed     int64        `yaml:"seed"` // 0 = time based
	Render   RenderConfig `yaml:"render"`
	Log      LogConfig    `yaml:"log"`
}

// GridConfig defines the maze dimensions and starting cell.
type GridConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Start  string `yaml:"start"` // "x,y"; empty = random
}

// RenderConfig defines terminal output options.
type RenderConfig struct {
	Color      bool   `yaml:"color"`
	WallColor  string `yaml:"wall_color"`
	StartColor string `yaml:"start_color"`
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks the values a maze cannot be generated without.
func (c MazeConfig) Validate() error {
	var errs []error
	if c.Grid.Width <= 1 || c.Grid.Width > MaxDimension {
		errs = append(errs, fmt.Errorf("grid.width must be in 2..%d, got %d", MaxDimension, c.Grid.Width))
	}
	if c.Grid.Height <= 1 || c.Grid.Height > MaxDimension {
		errs = append(errs, fmt.Errorf("grid.height must be in 2..%d, got %d", MaxDimension, c.Grid.Height))
	}
	if c.Strategy == "" {
		errs = append(errs, errors.New("strategy must not be empty"))
	}
	if c.Grid.Start != "" {
		p, err := ParsePoint(c.Grid.Start)
		if err != nil {
			errs = append(errs, err)
		} else if !p.In(c.Grid.Width, c.Grid.Height) {
			errs = append(errs, fmt.Errorf("grid.start %s is outside the %dx%d grid", p, c.Grid.Width, c.Grid.Height))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParsePoint parses "x,y" into a point. Spaces around either number are
// allowed; anything else is an error.
func ParsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("invalid point %q, expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Point{}, fmt.Errorf("invalid point %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Point{}, fmt.Errorf("invalid point %q: bad y: %w", s, err)
	}
	return core.P(x, y), nil
}
