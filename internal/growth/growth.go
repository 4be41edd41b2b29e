// Package growth registers the maze growth strategies.
//
//   - prim: randomized Prim over the whole frontier; picks the globally
//     cheapest edge leaving the visited region at every step.
//   - walk: nearest-neighbour walk; only compares the current cell's edges
//     and backtracks at dead ends.
package growth

import (
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/spanning"
)

// Strategy IDs.
const (
	PrimID = "prim"
	WalkID = "walk"
)

// Prim grows the tree with a global frontier heap.
type Prim struct{}

// ID returns the strategy identifier.
func (Prim) ID() string { return PrimID }

// Title returns the display name.
func (Prim) Title() string { return "Randomized Prim (global frontier)" }

// Grow runs Prim from start.
func (Prim) Grow(t *spanning.Tree, start core.Point) ([]spanning.Edge, error) {
	return t.Grow(start)
}

// Walk grows the tree one nearest unvisited neighbour at a time.
type Walk struct{}

// ID returns the strategy identifier.
func (Walk) ID() string { return WalkID }

// Title returns the display name.
func (Walk) Title() string { return "Nearest-neighbour walk" }

// Grow walks from start.
func (Walk) Grow(t *spanning.Tree, start core.Point) ([]spanning.Edge, error) {
	return t.Walk(start)
}

func init() {
	registry.Register(PrimID, func() registry.Strategy { return Prim{} })
	registry.Register(WalkID, func() registry.Strategy { return Walk{} })
}
