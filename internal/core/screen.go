package core

import (
	"strings"
)

// Screen is a 2D rune buffer that mazes draw into.
// It keeps the drawing code independent of where the text ends up.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// NewScreen creates a blank screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([][]rune, height),
	}
	for y := range s.cells {
		s.cells[y] = make([]rune, width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = r
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !P(x, y).In(s.width, s.height) {
		return
	}
	s.cells[y][x] = r
}

// Get returns the rune at the given position, or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	if !P(x, y).In(s.width, s.height) {
		return ' '
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}

// String joins all rows with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(s.cells[y]))
	}
	return sb.String()
}
