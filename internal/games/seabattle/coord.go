// Package seabattle provides the core game logic for Sea Battle: the 6x6
// grid, vessel placement, shot resolution and the turn-alternation loop.
// This package is UI-agnostic; frontends drive it through LineSource and
// observe it through Listener.
package seabattle

import "fmt"

// Coord addresses a single grid cell. X is the column, Y is the row, both
// 1-based. Coord is comparable and is used directly as a map key.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
