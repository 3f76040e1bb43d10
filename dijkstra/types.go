// Package dijkstra defines core types and configuration options
// for the weighted grid search.
//
// The search computes the minimum-cost path between a start cell and the
// first goal cell reached on a gridgraph.Grid, where the cost of each step
// depends on the terrain runes of the two cells involved.
//
// Complexity:
//
//	– Time:  O(E log V)   where V = passable cells, E ≤ 4V
//	   • Each cell is finalized at most once (V extracts).
//	   • Each relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) for the distance, visited and predecessor maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Direction:   Forward searches S→E, Reversed searches E→S.
//	– Start, Goal: runes identifying the start and goal cells.
//	– Source:      explicit start cell (overrides Start).
//	– Target:      explicit goal cell (overrides Goal).
//	– Cost:        step cost function; defaults to StepCost.
//	– ReturnPath:  reconstruct the cheapest path in Result.Path.
//
// Errors (sentinel):
//
//	– ErrNilGrid       if the provided grid pointer is nil.
//	– ErrStartNotFound if no cell matches the start rune.
//	– ErrNegativeCost  if the cost function yields a negative step cost.
//	– ErrNoPath        if the frontier empties before any goal cell is popped.
package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/quests/coord"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartNotFound indicates that no cell holds the start rune and no
	// explicit source cell was configured.
	ErrStartNotFound = errors.New("dijkstra: start cell not found in grid")

	// ErrSourceOutOfRange indicates an explicit source cell outside the grid or on a wall.
	ErrSourceOutOfRange = errors.New("dijkstra: source cell is not a passable grid cell")

	// ErrNegativeCost indicates that the cost function produced a negative step cost.
	ErrNegativeCost = errors.New("dijkstra: negative step cost encountered")

	// ErrNoPath indicates that no goal cell is reachable from the start.
	// It is a reported outcome, not a malformed input: Search returns
	// NoPath together with it.
	ErrNoPath = errors.New("dijkstra: no path to goal")
)

// NoPath is the cost reported alongside ErrNoPath.
const NoPath = -1

// Default start and goal runes.
const (
	StartRune = 'S'
	GoalRune  = 'E'
)

// Direction selects which of the two endpoint runes is the start.
type Direction int

const (
	// Forward searches from StartRune to GoalRune.
	Forward Direction = iota
	// Reversed searches from GoalRune to StartRune.
	Reversed
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Reversed {
		return "reversed"
	}
	return "forward"
}

// CostFunc returns the cost of stepping from a cell holding from into an
// adjacent cell holding to. It must never return a negative value.
type CostFunc func(from, to rune) int

// Options configures the behavior of Search.
//
// Start/Goal   – runes of the start and goal cells; zero means the rune
//                implied by Direction, whatever the option order.
// Source       – explicit start cell, used when HasSource is true.
// Target       – explicit goal cell, used when HasTarget is true.
// Cost         – step cost; defaults to StepCost.
// ReturnPath   – if true, Result.Path holds the cheapest path.
// Ctx          – cancellation, checked once per extraction.
type Options struct {
	Ctx        context.Context
	Direction  Direction
	Start      rune
	Goal       rune
	Source     coord.Coord2
	HasSource  bool
	Target     coord.Coord2
	HasTarget  bool
	Cost       CostFunc
	ReturnPath bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects the search direction: Forward uses S as start and
// E as goal, Reversed swaps them. Runes set with WithStart or WithGoal take
// precedence regardless of order.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		o.Direction = d
	}
}

// WithStart overrides the start rune.
func WithStart(r rune) Option {
	return func(o *Options) {
		o.Start = r
	}
}

// WithGoal overrides the goal rune.
func WithGoal(r rune) Option {
	return func(o *Options) {
		o.Goal = r
	}
}

// WithSource starts the search at an explicit cell instead of the first
// cell holding the start rune.
func WithSource(c coord.Coord2) Option {
	return func(o *Options) {
		o.Source, o.HasSource = c, true
	}
}

// WithTarget ends the search at an explicit cell instead of any cell
// holding the goal rune.
func WithTarget(c coord.Coord2) Option {
	return func(o *Options) {
		o.Target, o.HasTarget = c, true
	}
}

// WithCostFunc replaces the default StepCost.
func WithCostFunc(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithReturnPath enables reconstruction of the cheapest path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:        context.Background().
//   - Direction:  Forward (Start='S', Goal='E' once resolved).
//   - Cost:       StepCost.
//   - ReturnPath: false.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Direction: Forward,
		Cost:      StepCost,
	}
}

// resolveEndpoints fills the unset Start and Goal runes from Direction.
func (o *Options) resolveEndpoints() {
	start, goal := StartRune, GoalRune
	if o.Direction == Reversed {
		start, goal = goal, start
	}
	if o.Start == 0 {
		o.Start = start
	}
	if o.Goal == 0 {
		o.Goal = goal
	}
}

// Result is the outcome of a successful Search.
type Result struct {
	// Cost is the accumulated cost of the cheapest path.
	Cost int
	// Start and Goal are the endpoint cells.
	Start, Goal coord.Coord2
	// Path lists the cells from Start to Goal inclusive, when ReturnPath is set.
	Path []coord.Coord2
}
