package maze

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/board"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/spanning"
)

// DefaultStrategy is the growth strategy used when none is configured.
const DefaultStrategy = "prim"

// Game ties a board, a starting cell and a spanning engine together.
// The start is chosen once, when the game is created.
type Game struct {
	board    *board.Board
	start    core.Point
	tree     *spanning.Tree
	strategy string
	logger   *log.Logger
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *log.Logger) GameOption {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTree sets the spanning engine, e.g. one with a seeded weight source.
func WithTree(t *spanning.Tree) GameOption {
	return func(g *Game) {
		if t != nil {
			g.tree = t
		}
	}
}

// WithStrategy selects a registered growth strategy by ID.
func WithStrategy(id string) GameOption {
	return func(g *Game) {
		if id != "" {
			g.strategy = id
		}
	}
}

// NewGame validates the board size and picks the starting cell.
// A nil chooser picks a random cell.
func NewGame(width, height int, chooser board.Chooser, opts ...GameOption) (*Game, error) {
	b, err := board.New(width, height)
	if err != nil {
		return nil, err
	}
	if chooser == nil {
		chooser = board.NewRandomChooser(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	g := &Game{
		board:    b,
		strategy: DefaultStrategy,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.tree == nil {
		g.tree = spanning.New()
	}

	g.start = chooser.Choose(width, height)
	if !b.Contains(g.start) {
		return nil, fmt.Errorf("maze: start %s is outside the %dx%d board", g.start, width, height)
	}
	return g, nil
}

// Board returns the game board.
func (g *Game) Board() *board.Board {
	return g.board
}

// StartLocation returns the cell growth starts from.
func (g *Game) StartLocation() core.Point {
	return g.start
}

// Tree returns the spanning engine, holding the state of the last CreateMaze.
func (g *Game) Tree() *spanning.Tree {
	return g.tree
}

// Strategy returns the configured strategy ID.
func (g *Game) Strategy() string {
	return g.strategy
}

// CreateMaze rebuilds the engine from the board dimensions and grows a new
// maze from the start cell. Each call produces a fresh maze.
func (g *Game) CreateMaze() (*Maze, error) {
	strategy, err := registry.Create(g.strategy)
	if err != nil {
		return nil, err
	}

	width, height := g.board.Width(), g.board.Height()
	if _, err := g.tree.Build(width, height); err != nil {
		return nil, fmt.Errorf("maze: build grid: %w", err)
	}

	edges, err := strategy.Grow(g.tree, g.start)
	if err != nil {
		return nil, fmt.Errorf("maze: grow with %s: %w", strategy.ID(), err)
	}

	m, err := New(width, height, edges)
	if err != nil {
		return nil, err
	}
	if !m.Perfect() {
		return nil, fmt.Errorf("%w: %s carved %d corridors for %d cells", ErrNotPerfect, strategy.ID(), m.Corridors(), width*height)
	}
	m.start = g.start
	m.hasStart = true

	g.logger.Debug("maze built",
		"width", width,
		"height", height,
		"strategy", strategy.ID(),
		"start", g.start,
		"corridors", m.Corridors(),
	)
	return m, nil
}
