package core

// Direction is one of the four compass moves between grid cells.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// directions is the fixed iteration order used everywhere a direction set is scanned.
var directions = [...]Direction{Up, Down, Left, Right}

// Directions returns all four directions in their fixed order: Up, Down, Left, Right.
func Directions() []Direction {
	out := make([]Direction, len(directions))
	copy(out, directions[:])
	return out
}

// String returns the upper-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing back the way this one came.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d <= Right
}
