package spanning

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// WeightSource supplies the random bits for edge weights.
// *rand.Rand satisfies it.
type WeightSource interface {
	Uint64() uint64
}

// Option configures a Tree.
type Option func(*Tree)

// WithWeightSource makes the tree draw weights from src.
func WithWeightSource(src WeightSource) Option {
	return func(t *Tree) {
		if src != nil {
			t.src = src
		}
	}
}

// WithSeed makes weight generation reproducible.
func WithSeed(seed int64) Option {
	return func(t *Tree) {
		t.src = rand.New(rand.NewSource(seed))
	}
}

// Tree owns the weighted adjacency map of one grid plus the growth
// bookkeeping: pending cells, visited cells in visit order, and the frontier.
type Tree struct {
	width  int
	height int
	src    WeightSource

	points    []core.Point
	adjacency map[core.Point]map[core.Direction]int64
	pending   map[core.Point]struct{}
	visited   []core.Point
	seen      map[core.Point]struct{}
	frontier  []core.Point
}

// New creates an empty tree. Call Build before growing it.
func New(opts ...Option) *Tree {
	t := &Tree{
		src:       rand.New(rand.NewSource(time.Now().UnixNano())),
		adjacency: make(map[core.Point]map[core.Direction]int64),
		pending:   make(map[core.Point]struct{}),
		seen:      make(map[core.Point]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Build discards any previous grid and constructs the adjacency map for a
// width×height grid. Both dimensions must be greater than 1.
// It returns the tree itself so calls can be chained.
func (t *Tree) Build(width, height int) (*Tree, error) {
	if width <= 1 || height <= 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrGridTooSmall, width, height)
	}

	t.Reset()
	t.width = width
	t.height = height
	t.points = core.RowMajor(width, height)
	for _, p := range t.points {
		t.pending[p] = struct{}{}
	}

	// Row-major order guarantees the upper and left neighbours are already in
	// the map when a cell needs to reuse their weights.
	for _, p := range t.points {
		if err := t.addEdges(p, Classify(p, width, height).Directions()); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// addEdges records the weights for every direction available at p.
// Up and Left reuse the neighbour's Down and Right weights, Down and Right
// draw fresh ones.
func (t *Tree) addEdges(p core.Point, dirs []core.Direction) error {
	weights := make(map[core.Direction]int64, len(dirs))
	for _, d := range dirs {
		switch d {
		case core.Up, core.Left:
			n := p.Offset(d)
			w, ok := t.adjacency[n][d.Opposite()]
			if !ok {
				return fmt.Errorf("%w: %s has no %s weight when %s is scanned", ErrScanOrder, n, d.Opposite(), p)
			}
			weights[d] = w
		case core.Down, core.Right:
			weights[d] = int64(t.src.Uint64())
		}
	}
	t.adjacency[p] = weights
	return nil
}

// Reset clears the grid, the adjacency map and all growth bookkeeping.
func (t *Tree) Reset() {
	t.width = 0
	t.height = 0
	t.points = nil
	clear(t.adjacency)
	clear(t.pending)
	clear(t.seen)
	t.visited = nil
	t.frontier = nil
}

// Width returns the grid width, or 0 before Build.
func (t *Tree) Width() int {
	return t.width
}

// Height returns the grid height, or 0 before Build.
func (t *Tree) Height() int {
	return t.height
}

// AllPoints returns every grid point in row-major order.
func (t *Tree) AllPoints() []core.Point {
	out := make([]core.Point, len(t.points))
	copy(out, t.points)
	return out
}

// PendingPoints returns the points not yet visited, in row-major order.
func (t *Tree) PendingPoints() []core.Point {
	out := make([]core.Point, 0, len(t.pending))
	for _, p := range t.points {
		if _, ok := t.pending[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// VisitedPoints returns the visited points in visit order.
func (t *Tree) VisitedPoints() []core.Point {
	out := make([]core.Point, len(t.visited))
	copy(out, t.visited)
	return out
}

// Adjacency returns a copy of the full point → direction → weight map.
func (t *Tree) Adjacency() map[core.Point]map[core.Direction]int64 {
	out := make(map[core.Point]map[core.Direction]int64, len(t.adjacency))
	for p, weights := range t.adjacency {
		inner := make(map[core.Direction]int64, len(weights))
		for d, w := range weights {
			inner[d] = w
		}
		out[p] = inner
	}
	return out
}

// Frontier returns the recorded neighbours of visited cells that are still
// pending. A point appears once for every visit that recorded it.
func (t *Tree) Frontier() []core.Point {
	out := make([]core.Point, 0, len(t.frontier))
	for _, p := range t.frontier {
		if _, ok := t.pending[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Weight returns the weight of the edge leaving p in direction d.
func (t *Tree) Weight(p core.Point, d core.Direction) (int64, bool) {
	w, ok := t.adjacency[p][d]
	return w, ok
}

// IsVisited reports whether p has been visited since the last Build.
func (t *Tree) IsVisited(p core.Point) bool {
	_, ok := t.seen[p]
	return ok
}

// Done reports whether a built grid has no pending points left.
func (t *Tree) Done() bool {
	return len(t.points) > 0 && len(t.pending) == 0
}
