// Package bfs provides tunable options and error definitions
// for multi-source breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/quests/coord"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrNoStarts is returned when the start set is empty.
	ErrNoStarts = errors.New("bfs: no start cells")

	// ErrStartBlocked is returned when a start cell is a wall or outside the grid.
	ErrStartBlocked = errors.New("bfs: start cell is not passable")

	// ErrBadTargetCount is returned when fewer than one target is requested.
	ErrBadTargetCount = errors.New("bfs: target count must be positive")

	// ErrNoTargets is returned when the grid holds no target cell.
	ErrNoTargets = errors.New("bfs: grid has no target cells")

	// ErrTargetsUnreachable is returned when the frontier empties before
	// the requested number of targets was discovered.
	ErrTargetsUnreachable = errors.New("bfs: frontier exhausted before all targets were reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Default cell runes.
const (
	// OpenRune marks an empty cell eligible as a start.
	OpenRune = '.'
	// TargetRune marks a target cell.
	TargetRune = 'P'
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative worker count), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Target is the rune of target cells.
	Target rune

	// OnVisit is called when a cell is popped from the frontier, before it
	// is checked as a target. If it returns an error, the search aborts.
	OnVisit func(c coord.Coord2, depth int) error

	// OnTarget is called for every discovered target.
	OnTarget func(c coord.Coord2, depth int)

	// Workers bounds the goroutines used by BestSingleStart; zero means no limit.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - Target 'P'
//   - no-op hooks
//   - Workers 0
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Target:   TargetRune,
		OnVisit:  func(coord.Coord2, int) error { return nil },
		OnTarget: func(coord.Coord2, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget overrides the target rune.
func WithTarget(r rune) Option {
	return func(o *Options) {
		o.Target = r
	}
}

// WithOnVisit registers a callback to run on every pop; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c coord.Coord2, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnTarget registers a callback to run on every target discovery.
func WithOnTarget(fn func(c coord.Coord2, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTarget = fn
		}
	}
}

// WithWorkers bounds the parallelism of BestSingleStart.
//
//	n > 0: at most n searches run at once
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result holds the outcome of a multi-source search.
//   - First: depth at which the first target was discovered.
//   - Depth: depth at which the last required target was discovered.
//   - Total: sum of the discovery depths of all required targets.
type Result struct {
	First int
	Depth int
	Total int
}
