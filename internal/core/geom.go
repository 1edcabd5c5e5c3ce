// Package core provides fundamental types shared by the puzzle solvers and
// the driver. It has no external dependencies so solvers stay pure and
// testable.
package core

import "fmt"

// Position is a 2D coordinate. X grows to the right, Y grows downward.
// Positions are unbounded; validity is decided by the grid they index.
type Position struct {
	X, Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the Position one unit away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Direction is one of the eight compass directions.
type Direction uint8

const (
	TopLeft Direction = iota
	Top
	TopRight
	Left
	Right
	BottomLeft
	Bottom
	BottomRight
)

// Directions lists all eight directions in declaration order.
var Directions = [8]Direction{TopLeft, Top, TopRight, Left, Right, BottomLeft, Bottom, BottomRight}

// Diagonals lists the four diagonal directions, clockwise from TopLeft.
var Diagonals = [4]Direction{TopLeft, TopRight, BottomRight, BottomLeft}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case TopLeft:
		return "TopLeft"
	case Top:
		return "Top"
	case TopRight:
		return "TopRight"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case BottomLeft:
		return "BottomLeft"
	case Bottom:
		return "Bottom"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) unit displacement of the direction.
// Top decreases Y, Bottom increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case TopLeft:
		return -1, -1
	case Top:
		return 0, -1
	case TopRight:
		return 1, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case BottomLeft:
		return -1, 1
	case Bottom:
		return 0, 1
	case BottomRight:
		return 1, 1
	default:
		return 0, 0
	}
}

// Reverse returns the direction rotated by 180 degrees.
func (d Direction) Reverse() Direction {
	switch d {
	case TopLeft:
		return BottomRight
	case Top:
		return Bottom
	case TopRight:
		return BottomLeft
	case Left:
		return Right
	case Right:
		return Left
	case BottomLeft:
		return TopRight
	case Bottom:
		return Top
	case BottomRight:
		return TopLeft
	default:
		return d
	}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
