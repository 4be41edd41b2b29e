package spanning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func TestClassify5x5(t *testing.T) {
	tests := []struct {
		p    core.Point
		want Position
	}{
		{core.P(0, 0), TopLeftCorner},
		{core.P(4, 0), TopRightCorner},
		{core.P(0, 4), BottomLeftCorner},
		{core.P(4, 4), BottomRightCorner},
		{core.P(1, 0), TopEdge},
		{core.P(2, 0), TopEdge},
		{core.P(3, 0), TopEdge},
		{core.P(2, 4), BottomEdge},
		{core.P(0, 1), LeftEdge},
		{core.P(0, 3), LeftEdge},
		{core.P(4, 1), RightEdge},
		{core.P(4, 3), RightEdge},
		{core.P(2, 2), Interior},
		{core.P(1, 3), Interior},
	}

	for _, tc := range tests {
		t.Run(tc.p.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.p, 5, 5))
		})
	}
}

func TestBoundaryPredicates(t *testing.T) {
	for y := 0; y < 5; y++ {
		assert.True(t, LastColumn(core.P(4, y), 5), "column 4 is last at row %d", y)
		assert.True(t, FirstColumn(core.P(0, y)))
	}
	for x := 0; x < 4; x++ {
		assert.False(t, LastColumn(core.P(x, 4), 5), "column %d is not last", x)
	}
	assert.True(t, TopRow(core.P(3, 0)))
	assert.False(t, TopRow(core.P(3, 1)))
	assert.True(t, BottomRow(core.P(0, 4), 5))
	assert.False(t, BottomRow(core.P(0, 3), 5))
}

func TestPositionDirections(t *testing.T) {
	tests := []struct {
		pos  Position
		want []core.Direction
	}{
		{TopLeftCorner, []core.Direction{core.Down, core.Right}},
		{TopRightCorner, []core.Direction{core.Down, core.Left}},
		{BottomLeftCorner, []core.Direction{core.Up, core.Right}},
		{BottomRightCorner, []core.Direction{core.Up, core.Left}},
		{TopEdge, []core.Direction{core.Down, core.Left, core.Right}},
		{BottomEdge, []core.Direction{core.Up, core.Left, core.Right}},
		{LeftEdge, []core.Direction{core.Up, core.Down, core.Right}},
		{RightEdge, []core.Direction{core.Up, core.Down, core.Left}},
		{Interior, []core.Direction{core.Up, core.Down, core.Left, core.Right}},
	}

	for _, tc := range tests {
		t.Run(tc.pos.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.pos.Directions())
			switch len(tc.want) {
			case 2:
				assert.True(t, tc.pos.IsCorner())
			case 3:
				assert.True(t, tc.pos.IsEdge())
			case 4:
				assert.True(t, tc.pos.IsInterior())
			}
		})
	}
}

func TestClassifyMatchesBounds(t *testing.T) {
	// Every direction a class allows must stay in bounds, every other must leave.
	const w, h = 4, 3
	for _, p := range core.RowMajor(w, h) {
		allowed := make(map[core.Direction]bool)
		for _, d := range Classify(p, w, h).Directions() {
			allowed[d] = true
		}
		for _, d := range core.Directions() {
			assert.Equal(t, p.Offset(d).In(w, h), allowed[d], "%s %s", p, d)
		}
	}
}
