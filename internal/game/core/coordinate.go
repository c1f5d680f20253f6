package core

import "fmt"

// Coordinate is a column/row position on the board. X grows east, Y grows south.
type Coordinate struct {
	X, Y int
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex converts a row-major tile index back to a coordinate.
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid reports whether the coordinate lies inside a width x height grid.
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a row-major tile index.
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// DistanceTo returns the Manhattan distance to another coordinate.
func (c Coordinate) DistanceTo(other Coordinate) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	return c.DistanceTo(other) == 1
}

// Direction is one of the four orthogonal steps. The declaration order is the
// order in which neighbours are linked.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

var directionOffsets = [...]Coordinate{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
	East:  {X: 1, Y: 0},
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Move returns the coordinate one step away in the given direction.
func (c Coordinate) Move(d Direction) Coordinate {
	if d < North || d > East {
		return c
	}
	off := directionOffsets[d]
	return Coordinate{X: c.X + off.X, Y: c.Y + off.Y}
}

// Neighbors returns the four orthogonal neighbours in N, S, W, E order.
func (c Coordinate) Neighbors() []Coordinate {
	out := make([]Coordinate, 0, 4)
	for d := North; d <= East; d++ {
		out = append(out, c.Move(d))
	}
	return out
}

// ValidNeighbors returns only the neighbours inside a width x height grid.
func (c Coordinate) ValidNeighbors(width, height int) []Coordinate {
	valid := make([]Coordinate, 0, 4)
	for _, n := range c.Neighbors() {
		if n.IsValid(width, height) {
			valid = append(valid, n)
		}
	}
	return valid
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
