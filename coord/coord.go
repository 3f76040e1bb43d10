package coord

import "fmt"

// Coord2 is an immutable 2-D integer point.
type Coord2 struct {
	X, Y int
}

// New2 returns the point (x, y).
func New2(x, y int) Coord2 {
	return Coord2{X: x, Y: y}
}

// Add returns the vector sum c + o.
func (c Coord2) Add(o Coord2) Coord2 {
	return Coord2{X: c.X + o.X, Y: c.Y + o.Y}
}

// String formats the point as "(x,y)".
func (c Coord2) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Coord3 is an immutable 3-D integer point.
type Coord3 struct {
	X, Y, Z int
}

// New3 returns the point (x, y, z).
func New3(x, y, z int) Coord3 {
	return Coord3{X: x, Y: y, Z: z}
}

// Add returns the vector sum c + o.
func (c Coord3) Add(o Coord3) Coord3 {
	return Coord3{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sign returns the per-axis sign of c, each component in {-1, 0, 1}.
func (c Coord3) Sign() Coord3 {
	return Coord3{X: sign(c.X), Y: sign(c.Y), Z: sign(c.Z)}
}

// Sub returns the vector difference c - o.
func (c Coord3) Sub(o Coord3) Coord3 {
	return Coord3{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// String formats the point as "(x,y,z)".
func (c Coord3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Orthogonal2 holds the unit moves up, right, down, left.
var Orthogonal2 = [4]Coord2{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Orthogonal3 holds the six unit moves along ±X, ±Y, ±Z.
var Orthogonal3 = [6]Coord3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
