package segment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quests/coord"
)

// Sentinel errors for parsing and analysis.
var (
	// ErrEmptyStep is returned for an empty step token.
	ErrEmptyStep = errors.New("segment: empty step")

	// ErrBadDirection is returned for an unknown direction symbol.
	ErrBadDirection = errors.New("segment: unknown direction")

	// ErrBadCount is returned when a step count is not a non-negative integer.
	ErrBadCount = errors.New("segment: invalid step count")

	// ErrNoAxisSegment is returned when no leaf reaches a segment on the
	// X == 0, Z == 0 axis.
	ErrNoAxisSegment = errors.New("segment: no axis segment reachable from any leaf")
)

// Direction is one of the six axis-aligned growth directions.
type Direction byte

// Growth directions.
const (
	Up       Direction = 'U' // +Y
	Down     Direction = 'D' // -Y
	Right    Direction = 'R' // +X
	Left     Direction = 'L' // -X
	Forward  Direction = 'F' // +Z
	Backward Direction = 'B' // -Z
)

// ParseDirection converts a one-letter symbol into a Direction.
func ParseDirection(s string) (Direction, error) {
	if len(s) == 1 {
		switch d := Direction(s[0]); d {
		case Up, Down, Right, Left, Forward, Backward:
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// Unit returns the unit vector of d.
func (d Direction) Unit() coord.Coord3 {
	switch d {
	case Up:
		return coord.Coord3{Y: 1}
	case Down:
		return coord.Coord3{Y: -1}
	case Right:
		return coord.Coord3{X: 1}
	case Left:
		return coord.Coord3{X: -1}
	case Forward:
		return coord.Coord3{Z: 1}
	case Backward:
		return coord.Coord3{Z: -1}
	}
	return coord.Coord3{}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return string(rune(d))
}

// Step moves Count units in direction Dir.
type Step struct {
	Dir   Direction
	Count int
}

// Apply returns the cell reached from c after the whole step.
func (s Step) Apply(c coord.Coord3) coord.Coord3 {
	u := s.Dir.Unit()
	return c.Add(coord.Coord3{X: u.X * s.Count, Y: u.Y * s.Count, Z: u.Z * s.Count})
}

// String formats the step as in the input, e.g. "U5".
func (s Step) String() string {
	return fmt.Sprintf("%s%d", s.Dir, s.Count)
}
