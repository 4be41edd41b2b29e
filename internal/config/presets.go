package config

import "fmt"

// SizePreset represents a named grid size.
type SizePreset string

const (
	SizeSmall  SizePreset = "small"
	SizeMedium SizePreset = "medium"
	SizeLarge  SizePreset = "large"
)

// DimensionsForPreset returns the grid width and height for a size preset.
func DimensionsForPreset(preset SizePreset) (width, height int, ok bool) {
	switch preset {
	case SizeSmall:
		return 8, 6, true
	case SizeMedium:
		return 16, 10, true
	case SizeLarge:
		return 32, 16, true
	default:
		return 0, 0, false
	}
}

// ApplySizePreset sets the grid dimensions from a size preset.
func ApplySizePreset(cfg *MazeConfig, preset SizePreset) error {
	w, h, ok := DimensionsForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown size preset %q (want small, medium or large)", preset)
	}
	cfg.Grid.Width = w
	cfg.Grid.Height = h
	return nil
}
