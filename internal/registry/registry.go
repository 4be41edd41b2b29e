// Package registry provides a global registry of maze growth strategies.
// Strategies register themselves in init() functions, so callers can pick
// one by name without importing it directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/spanning"
)

// Strategy grows a spanning tree over a built grid.
type Strategy interface {
	// ID returns a unique identifier (e.g., "prim", "walk"), used by the CLI and config.
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Grow visits every cell of a freshly built tree starting at start and
	// returns the tree edges that become the maze corridors.
	Grow(t *spanning.Tree, start core.Point) ([]spanning.Edge, error)
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a strategy.
type Factory func() Strategy

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a strategy by its ID.
func Create(id string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
