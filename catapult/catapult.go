// Package catapult scores targets and meteors for a row of three catapult
// segments standing on the bottom row of a firing range.
//
// Targets ('T', or hardened 'H') on the range are ranked by their
// Manhattan distance from the firing origin; falling meteors are ranked by
// the first segment able to intercept them.
package catapult

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quests/coord"
	"github.com/katalvlaran/quests/gridgraph"
)

// ErrUnreachable is returned when no catapult segment can hit a position.
var ErrUnreachable = errors.New("catapult: position cannot be hit")

// Target runes.
const (
	Target   = 'T'
	Hardened = 'H'
)

// Segments is the number of stacked catapult segments (A, B, C).
const Segments = 3

// TargetRank ranks a target cell from its distance to the firing origin:
// (distance%3 + 1) * (distance/3).
func TargetRank(distance int) int {
	return (distance%Segments + 1) * (distance / Segments)
}

// Score sums the ranks of every target in g, skipping column 0 where the
// catapults stand. The origin is the bottom row. With hardened, 'H'
// targets take two hits and score double; otherwise they score once.
func Score(g *gridgraph.Grid, hardened bool) int {
	originY := g.Height - 1
	score := 0
	for x := 1; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			r := g.Cells[y][x]
			if r != Target && r != Hardened {
				continue
			}
			distance := originY - y
			if distance < 0 {
				distance = -distance
			}
			rank := TargetRank(distance + x)
			if hardened && r == Hardened {
				rank *= 2
			}
			score += rank
		}
	}

	return score
}

// HitPosition returns where a meteor first seen at p can be intercepted:
// half its horizontal distance, after it has fallen as far.
func HitPosition(p coord.Coord2) coord.Coord2 {
	return coord.Coord2{X: p.X / 2, Y: p.Y - p.X/2 - p.X%2}
}

// Rank returns the rank of the lowest segment able to hit position hit:
// segment index (1-based) times the shot power.
func Rank(hit coord.Coord2) (int, error) {
	for base := 0; base < Segments; base++ {
		y := hit.Y - base
		horizontal := hit.X + y
		if hit.X < y {
			continue
		}
		if hit.X <= 2*y {
			return (base + 1) * y, nil
		}
		if horizontal%3 == 0 {
			return (base + 1) * (horizontal / 3), nil
		}
	}

	return 0, fmt.Errorf("%w: %v", ErrUnreachable, hit)
}

// MeteorScore sums the ranks of every meteor.
func MeteorScore(meteors []coord.Coord2) (int, error) {
	score := 0
	for _, m := range meteors {
		rank, err := Rank(HitPosition(m))
		if err != nil {
			return 0, fmt.Errorf("meteor %v: %w", m, err)
		}
		score += rank
	}

	return score, nil
}
