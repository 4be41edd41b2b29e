// Package core provides the value types shared by the maze engine and its
// collaborators. It has no external dependencies so the engine stays pure and
// testable.
package core

import "fmt"

// Point identifies a grid cell by column (X) and row (Y).
// X increases to the right, Y increases downward.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Offset returns the point one step away in direction d.
func (p Point) Offset(d Direction) Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// In reports whether p lies inside a width×height grid.
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// DirectionTo returns the direction leading from p to an orthogonally
// adjacent point q. ok is false when q is not one step away.
func (p Point) DirectionTo(q Point) (d Direction, ok bool) {
	for _, d := range directions {
		if p.Offset(d) == q {
			return d, true
		}
	}
	return 0, false
}

// RowMajor lists every point of a width×height grid, row by row from the
// top-left origin.
func RowMajor(width, height int) []Point {
	if width <= 0 || height <= 0 {
		return nil
	}
	points := make([]Point, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			points = append(points, P(x, y))
		}
	}
	return points
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
