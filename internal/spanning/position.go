package spanning

import "github.com/vovakirdan/tui-maze/internal/core"

// Position is the topological class of a cell: one of the four corners, one
// of the four non-corner borders, or the interior.
type Position uint8

const (
	Interior Position = iota
	TopLeftCorner
	TopRightCorner
	BottomLeftCorner
	BottomRightCorner
	TopEdge
	BottomEdge
	LeftEdge
	RightEdge
)

// FirstColumn reports whether p is in column 0.
func FirstColumn(p core.Point) bool { return p.X == 0 }

// LastColumn reports whether p is in the last column of a grid of the given width.
func LastColumn(p core.Point, width int) bool { return p.X == width-1 }

// TopRow reports whether p is in row 0.
func TopRow(p core.Point) bool { return p.Y == 0 }

// BottomRow reports whether p is in the last row of a grid of the given height.
func BottomRow(p core.Point, height int) bool { return p.Y == height-1 }

// Classify returns the position class of p in a width×height grid.
// Corners need a row and a column boundary, borders exactly one, the
// interior none. The grid must be at least 2×2.
func Classify(p core.Point, width, height int) Position {
	top, bottom := TopRow(p), BottomRow(p, height)
	left, right := FirstColumn(p), LastColumn(p, width)

	switch {
	case top && left:
		return TopLeftCorner
	case top && right:
		return TopRightCorner
	case bottom && left:
		return BottomLeftCorner
	case bottom && right:
		return BottomRightCorner
	case top:
		return TopEdge
	case bottom:
		return BottomEdge
	case left:
		return LeftEdge
	case right:
		return RightEdge
	default:
		return Interior
	}
}

// Directions returns the in-bounds directions for a cell of this class, in
// Up, Down, Left, Right order.
func (pos Position) Directions() []core.Direction {
	switch pos {
	case TopLeftCorner:
		return []core.Direction{core.Down, core.Right}
	case TopRightCorner:
		return []core.Direction{core.Down, core.Left}
	case BottomLeftCorner:
		return []core.Direction{core.Up, core.Right}
	case BottomRightCorner:
		return []core.Direction{core.Up, core.Left}
	case TopEdge:
		return []core.Direction{core.Down, core.Left, core.Right}
	case BottomEdge:
		return []core.Direction{core.Up, core.Left, core.Right}
	case LeftEdge:
		return []core.Direction{core.Up, core.Down, core.Right}
	case RightEdge:
		return []core.Direction{core.Up, core.Down, core.Left}
	case Interior:
		return []core.Direction{core.Up, core.Down, core.Left, core.Right}
	default:
		return nil
	}
}

// IsCorner reports whether the class is one of the four corners.
func (pos Position) IsCorner() bool {
	switch pos {
	case TopLeftCorner, TopRightCorner, BottomLeftCorner, BottomRightCorner:
		return true
	default:
		return false
	}
}

// IsEdge reports whether the class is a border cell that is not a corner.
func (pos Position) IsEdge() bool {
	switch pos {
	case TopEdge, BottomEdge, LeftEdge, RightEdge:
		return true
	default:
		return false
	}
}

// IsInterior reports whether the class touches no grid boundary.
func (pos Position) IsInterior() bool {
	return pos == Interior
}

// String returns a human-readable name for the class.
func (pos Position) String() string {
	switch pos {
	case Interior:
		return "interior"
	case TopLeftCorner:
		return "top-left corner"
	case TopRightCorner:
		return "top-right corner"
	case BottomLeftCorner:
		return "bottom-left corner"
	case BottomRightCorner:
		return "bottom-right corner"
	case TopEdge:
		return "top edge"
	case BottomEdge:
		return "bottom edge"
	case LeftEdge:
		return "left edge"
	case RightEdge:
		return "right edge"
	default:
		return "unknown"
	}
}
