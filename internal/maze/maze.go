// Package maze turns a grown spanning tree into a maze: tree edges are open
// corridors, every other grid adjacency is a wall.
package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/spanning"
)

// ErrInvalidEdge indicates an edge that does not join two adjacent cells of the grid.
var ErrInvalidEdge = errors.New("maze: edge does not join two cells of the grid")

// ErrNotPerfect indicates a growth result that leaves cells unreachable or
// carves a loop.
var ErrNotPerfect = errors.New("maze: growth did not produce a perfect maze")

// Maze is a width×height grid of cells with open passages between some
// neighbours. Cells are stored in row-major order: index = y*width + x.
type Maze struct {
	width     int
	height    int
	open      []uint8 // bit d set when the passage in direction d is open
	corridors int
	start     core.Point
	hasStart  bool
}

// New carves the given edges into a closed width×height maze.
func New(width, height int, edges []spanning.Edge) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("maze: invalid size %dx%d", width, height)
	}
	m := &Maze{
		width:  width,
		height: height,
		open:   make([]uint8, width*height),
	}
	for _, e := range edges {
		if err := m.carve(e.From, e.To()); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// carve opens the passage between adjacent cells p and q on both sides.
func (m *Maze) carve(p, q core.Point) error {
	d, adjacent := p.DirectionTo(q)
	if !adjacent || !p.In(m.width, m.height) || !q.In(m.width, m.height) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidEdge, p, q)
	}
	if m.Open(p, d) {
		return nil
	}
	m.open[m.index(p)] |= 1 << d
	m.open[m.index(q)] |= 1 << d.Opposite()
	m.corridors++
	return nil
}

func (m *Maze) index(p core.Point) int {
	return p.Y*m.width + p.X
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Open reports whether there is no wall between p and its neighbour in direction d.
// Out-of-bounds queries are walls.
func (m *Maze) Open(p core.Point, d core.Direction) bool {
	if !p.In(m.width, m.height) || !d.Valid() {
		return false
	}
	return m.open[m.index(p)]&(1<<d) != 0
}

// Exits returns the open directions from p in Up, Down, Left, Right order.
func (m *Maze) Exits(p core.Point) []core.Direction {
	var out []core.Direction
	for _, d := range core.Directions() {
		if m.Open(p, d) {
			out = append(out, d)
		}
	}
	return out
}

// Corridors returns the number of open passages.
func (m *Maze) Corridors() int {
	return m.corridors
}

// Start returns the cell growth started from, if one was recorded.
func (m *Maze) Start() (core.Point, bool) {
	return m.start, m.hasStart
}

// Connected reports whether every cell can be reached from the top-left cell.
func (m *Maze) Connected() bool {
	seen := make([]bool, len(m.open))
	queue := []core.Point{core.P(0, 0)}
	seen[0] = true
	reached := 0

	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		reached++
		for _, d := range m.Exits(p) {
			q := p.Offset(d)
			if i := m.index(q); !seen[i] {
				seen[i] = true
				queue = append(queue, q)
			}
		}
	}
	return reached == len(m.open)
}

// Perfect reports whether the maze is a spanning tree: connected, with
// exactly one route between any two cells.
func (m *Maze) Perfect() bool {
	return m.corridors == m.width*m.height-1 && m.Connected()
}
