// Package board holds the grid a maze is carved into and the choice of the
// starting cell. The spanning engine only reads its dimensions.
package board

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// ErrTooSmall indicates a board with fewer than 2 rows or 2 columns.
var ErrTooSmall = errors.New("board: the game grid must be at least 2 rows by 2 columns")

// Board is an H×W array of cells. Cells start blank.
type Board struct {
	cells [][]rune
}

// New allocates a width×height board.
func New(width, height int) (*Board, error) {
	if width <= 1 || height <= 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, width, height)
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Board{cells: cells}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return len(b.cells[0])
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return len(b.cells)
}

// Cells returns the underlying rows, indexed [y][x].
func (b *Board) Cells() [][]rune {
	return b.cells
}

// Contains reports whether p is a cell of the board.
func (b *Board) Contains(p core.Point) bool {
	return p.In(b.Width(), b.Height())
}

// Chooser picks the cell growth starts from.
type Chooser interface {
	Choose(width, height int) core.Point
}

// RandomChooser picks a uniformly random cell.
type RandomChooser struct {
	rng *rand.Rand
}

// NewRandomChooser creates a chooser backed by rng.
func NewRandomChooser(rng *rand.Rand) *RandomChooser {
	return &RandomChooser{rng: rng}
}

// Choose returns a random point inside a width×height grid.
func (c *RandomChooser) Choose(width, height int) core.Point {
	return core.P(c.rng.Intn(width), c.rng.Intn(height))
}

// FixedChooser always returns the same point, clamped into the grid.
type FixedChooser core.Point

// Choose returns the fixed point, clamped into a width×height grid.
func (c FixedChooser) Choose(width, height int) core.Point {
	return core.P(core.Clamp(c.X, 0, width-1), core.Clamp(c.Y, 0, height-1))
}
