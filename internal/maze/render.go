package maze

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Glyphs used by Render.
const (
	WallGlyph  = '#'
	PathGlyph  = ' '
	StartGlyph = 'S'
)

// RenderSize returns the screen size needed to draw a width×height maze:
// one character per cell plus one per wall line.
func RenderSize(width, height int) (w, h int) {
	return 2*width + 1, 2*height + 1
}

// Render draws the maze into dst with its top-left corner at (0, 0).
// Cell (x, y) lands on (2x+1, 2y+1); the characters between cells are walls
// unless the passage is open.
func (m *Maze) Render(dst *core.Screen) {
	w, h := RenderSize(m.width, m.height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, y, WallGlyph)
		}
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := core.P(x, y)
			sx, sy := 2*x+1, 2*y+1
			dst.Set(sx, sy, PathGlyph)
			if m.Open(p, core.Right) {
				dst.Set(sx+1, sy, PathGlyph)
			}
			if m.Open(p, core.Down) {
				dst.Set(sx, sy+1, PathGlyph)
			}
		}
	}

	if m.hasStart {
		dst.Set(2*m.start.X+1, 2*m.start.Y+1, StartGlyph)
	}
}

// String renders the maze as plain text.
func (m *Maze) String() string {
	return m.Text("")
}

// Text renders the maze as plain text. A non-empty caption is written on
// an extra line below the maze.
func (m *Maze) Text(caption string) string {
	return m.canvas(caption).String()
}

// canvas renders the maze into a fresh screen, widened when the caption is
// longer than the maze.
func (m *Maze) canvas(caption string) *core.Screen {
	w, h := RenderSize(m.width, m.height)
	if caption != "" {
		w = max(w, utf8.RuneCountInString(caption))
		h++
	}
	screen := core.NewScreen(w, h)
	m.Render(screen)
	if caption != "" {
		screen.DrawText(0, h-1, caption)
	}
	return screen
}

// Theme holds the lipgloss styles for coloured output.
type Theme struct {
	Wall  lipgloss.Style
	Path  lipgloss.Style
	Start lipgloss.Style
}

// DefaultTheme returns the standard maze colour theme.
func DefaultTheme() Theme {
	return Theme{
		Wall:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Dim gray
		Path:  lipgloss.NewStyle(),
		Start: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true), // Lime green
	}
}

// ThemeFromColors builds a theme from ANSI colour strings; empty strings keep the defaults.
func ThemeFromColors(wall, start string) Theme {
	theme := DefaultTheme()
	if wall != "" {
		theme.Wall = lipgloss.NewStyle().Foreground(lipgloss.Color(wall))
	}
	if start != "" {
		theme.Start = lipgloss.NewStyle().Foreground(lipgloss.Color(start)).Bold(true)
	}
	return theme
}

// Styled renders the maze with the theme applied. Runs of the same glyph
// are styled together to keep the escape sequences short. The caption, if
// any, is drawn with the path style.
func (m *Maze) Styled(theme Theme, caption string) string {
	screen := m.canvas(caption)
	_, mazeH := RenderSize(m.width, m.height)

	var sb strings.Builder
	for y := 0; y < screen.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		if y >= mazeH {
			sb.WriteString(theme.Path.Render(screen.Row(y)))
			continue
		}
		for x := 0; x < screen.Width(); {
			r := screen.Get(x, y)
			end := x
			for end < screen.Width() && screen.Get(end, y) == r {
				end++
			}
			sb.WriteString(theme.styleFor(r).Render(strings.Repeat(string(r), end-x)))
			x = end
		}
	}
	return sb.String()
}

func (t Theme) styleFor(r rune) lipgloss.Style {
	switch r {
	case WallGlyph:
		return t.Wall
	case StartGlyph:
		return t.Start
	default:
		return t.Path
	}
}
