package maze

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/spanning"
)

// lShape opens (0,0)-(1,0), (0,0)-(0,1) and (1,0)-(1,1) on a 2x2 grid.
var lShape = []spanning.Edge{
	{From: core.P(0, 0), Dir: core.Right},
	{From: core.P(0, 0), Dir: core.Down},
	{From: core.P(1, 0), Dir: core.Down},
}

func TestNewCarvesBothSides(t *testing.T) {
	m, err := New(2, 2, lShape)
	require.NoError(t, err)

	assert.True(t, m.Open(core.P(0, 0), core.Right))
	assert.True(t, m.Open(core.P(1, 0), core.Left))
	assert.True(t, m.Open(core.P(1, 1), core.Up))
	assert.False(t, m.Open(core.P(0, 1), core.Right))
	assert.False(t, m.Open(core.P(1, 1), core.Left))
	assert.False(t, m.Open(core.P(0, 0), core.Up), "outer wall")
	assert.False(t, m.Open(core.P(5, 5), core.Up), "out of bounds")

	assert.Equal(t, []core.Direction{core.Down, core.Right}, m.Exits(core.P(0, 0)))
	assert.Equal(t, 3, m.Corridors())
	assert.True(t, m.Connected())
	assert.True(t, m.Perfect())
}

func TestNewIgnoresDuplicateEdges(t *testing.T) {
	m, err := New(2, 2, []spanning.Edge{
		{From: core.P(0, 0), Dir: core.Right},
		{From: core.P(1, 0), Dir: core.Left},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Corridors())
	assert.False(t, m.Connected())
	assert.False(t, m.Perfect())
}

func TestNewRejectsEdgesLeavingTheGrid(t *testing.T) {
	tests := []struct {
		name string
		edge spanning.Edge
	}{
		{"off the top", spanning.Edge{From: core.P(0, 0), Dir: core.Up}},
		{"off the right", spanning.Edge{From: core.P(1, 1), Dir: core.Right}},
		{"outside start", spanning.Edge{From: core.P(4, 4), Dir: core.Left}},
		{"bad direction", spanning.Edge{From: core.P(0, 0), Dir: core.Direction(9)}},
		{"bad direction inside", spanning.Edge{From: core.P(1, 1), Dir: core.Direction(4)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(2, 2, []spanning.Edge{tc.edge})
			assert.ErrorIs(t, err, ErrInvalidEdge)
		})
	}

	_, err := New(0, 3, nil)
	assert.Error(t, err)
}

func TestNewFromGrownTree(t *testing.T) {
	tree, err := spanning.New(spanning.WithSeed(8)).Build(9, 6)
	require.NoError(t, err)
	edges, err := tree.Grow(core.P(4, 3))
	require.NoError(t, err)

	m, err := New(9, 6, edges)
	require.NoError(t, err)
	assert.True(t, m.Perfect())

	// Every corridor is a tree edge and every other adjacency is a wall.
	inTree := make(map[spanning.Edge]bool)
	for _, e := range edges {
		inTree[spanning.Edge{From: e.From, Dir: e.Dir}] = true
		inTree[spanning.Edge{From: e.To(), Dir: e.Dir.Opposite()}] = true
	}
	for _, p := range tree.AllPoints() {
		for _, d := range core.Directions() {
			assert.Equal(t, inTree[spanning.Edge{From: p, Dir: d}], m.Open(p, d), "%s %s", p, d)
		}
	}
}

func TestRender(t *testing.T) {
	m, err := New(2, 2, lShape)
	require.NoError(t, err)

	want := strings.Join([]string{
		"#####",
		"#   #",
		"# # #",
		"# # #",
		"#####",
	}, "\n")
	assert.Equal(t, want, m.String())

	m.start, m.hasStart = core.P(0, 0), true
	assert.True(t, strings.HasPrefix(m.String(), "#####\n#S  #"))
}

func TestRenderIntoLargerScreen(t *testing.T) {
	m, err := New(2, 2, lShape)
	require.NoError(t, err)

	screen := core.NewScreen(7, 6)
	m.Render(screen)
	assert.Equal(t, "#####  ", screen.Row(0))
	assert.Equal(t, "       ", screen.Row(5))
}

func TestRenderSize(t *testing.T) {
	w, h := RenderSize(10, 4)
	assert.Equal(t, 21, w)
	assert.Equal(t, 9, h)
}

func TestStyledKeepsGlyphs(t *testing.T) {
	m, err := New(2, 2, lShape)
	require.NoError(t, err)

	// With plain styles the output matches the text rendering.
	plain := Theme{Wall: lipgloss.NewStyle(), Path: lipgloss.NewStyle(), Start: lipgloss.NewStyle()}
	assert.Equal(t, m.String(), m.Styled(plain, ""))
	assert.Equal(t, m.Text("prim 2x2"), m.Styled(plain, "prim 2x2"))

	styled := m.Styled(ThemeFromColors("1", "2"), "")
	assert.Equal(t, 5, strings.Count(styled, "\n")+1)
	assert.Contains(t, styled, "#")
}

func TestTextCaption(t *testing.T) {
	m, err := New(2, 2, lShape)
	require.NoError(t, err)

	assert.Equal(t, m.String(), m.Text(""))
	assert.Equal(t, m.String()+"\nab   ", m.Text("ab"))

	// A caption wider than the maze widens every row.
	lines := strings.Split(m.Text("seed=42"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "#####  ", lines[0])
	assert.Equal(t, "seed=42", lines[5])
}
