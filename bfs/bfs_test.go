package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quests/bfs"
	"github.com/katalvlaran/quests/coord"
	"github.com/katalvlaran/quests/gridgraph"
)

func mustGrid(t testing.TB, lines ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromLines(lines...)
	require.NoError(t, err)
	return g
}

func TestFindStarts(t *testing.T) {
	g := mustGrid(t,
		"#.##",
		"....",
		"#P.#",
		"##.#",
	)
	assert.Equal(t, []coord.Coord2{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 3}}, bfs.FindStarts(g, true))
	assert.Equal(t, []coord.Coord2{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}, bfs.FindStarts(g, false))
}

// TestMultiSource_CenterStart: both targets sit one step from the start.
func TestMultiSource_CenterStart(t *testing.T) {
	g := mustGrid(t, "P.P")

	res, err := bfs.MultiSource(g, []coord.Coord2{{X: 1, Y: 0}}, 2)
	require.NoError(t, err)
	assert.Equal(t, bfs.Result{First: 1, Depth: 1, Total: 2}, res)
}

// TestMultiSource_EdgeStarts follows the frontier through a small maze.
func TestMultiSource_EdgeStarts(t *testing.T) {
	g := mustGrid(t,
		"##.##",
		"#P..#",
		"#.#P#",
		"#####",
	)
	starts := bfs.FindStarts(g, true)
	require.Equal(t, []coord.Coord2{{X: 2, Y: 0}}, starts)

	var order []coord.Coord2
	res, err := bfs.MultiSource(g, starts, g.Count('P'),
		bfs.WithOnTarget(func(c coord.Coord2, _ int) { order = append(order, c) }),
	)
	require.NoError(t, err)
	assert.Equal(t, bfs.Result{First: 2, Depth: 3, Total: 5}, res)
	assert.Equal(t, []coord.Coord2{{X: 1, Y: 1}, {X: 3, Y: 2}}, order)
}

// TestMultiSource_Simultaneous: two seeds race to targets at opposite ends.
func TestMultiSource_Simultaneous(t *testing.T) {
	g := mustGrid(t, "..P....P..")
	res, err := bfs.MultiSource(g, []coord.Coord2{{X: 0, Y: 0}, {X: 9, Y: 0}}, 2)
	require.NoError(t, err)
	assert.Equal(t, bfs.Result{First: 2, Depth: 2, Total: 4}, res)
}

// TestMultiSource_StopsEarly checks that the frontier is discarded once
// the requested number of targets is reached.
func TestMultiSource_StopsEarly(t *testing.T) {
	g := mustGrid(t, ".P.P.P")
	visited := 0
	res, err := bfs.MultiSource(g, []coord.Coord2{{X: 0, Y: 0}}, 1,
		bfs.WithOnVisit(func(coord.Coord2, int) error { visited++; return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, bfs.Result{First: 1, Depth: 1, Total: 1}, res)
	assert.Equal(t, 2, visited)
}

// TestMultiSource_Monotonic: requiring one more target never lowers the depth.
func TestMultiSource_Monotonic(t *testing.T) {
	g := mustGrid(t,
		"P...#..P",
		".##.#.#.",
		"..P...P.",
		"#.####..",
		"P......P",
	)
	starts := []coord.Coord2{{X: 3, Y: 0}}
	prev := bfs.Result{}
	for n := 1; n <= g.Count('P'); n++ {
		res, err := bfs.MultiSource(g, starts, n)
		require.NoError(t, err, "n=%d", n)
		assert.GreaterOrEqual(t, res.Depth, prev.Depth, "n=%d", n)
		assert.GreaterOrEqual(t, res.Total, prev.Total, "n=%d", n)
		if n > 1 {
			assert.Equal(t, prev.First, res.First, "first discovery is independent of n")
		}
		prev = res
	}
}

func TestMultiSource_Errors(t *testing.T) {
	g := mustGrid(t, ".#P")

	_, err := bfs.MultiSource(nil, []coord.Coord2{{X: 0, Y: 0}}, 1)
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	_, err = bfs.MultiSource(g, nil, 1)
	assert.ErrorIs(t, err, bfs.ErrNoStarts)

	_, err = bfs.MultiSource(g, []coord.Coord2{{X: 0, Y: 0}}, 0)
	assert.ErrorIs(t, err, bfs.ErrBadTargetCount)

	_, err = bfs.MultiSource(g, []coord.Coord2{{X: 1, Y: 0}}, 1)
	assert.ErrorIs(t, err, bfs.ErrStartBlocked)

	_, err = bfs.MultiSource(g, []coord.Coord2{{X: 0, Y: 0}}, 1)
	assert.ErrorIs(t, err, bfs.ErrTargetsUnreachable)

	_, err = bfs.MultiSource(g, []coord.Coord2{{X: 0, Y: 0}}, 1, bfs.WithWorkers(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestMultiSource_HookAndContext(t *testing.T) {
	g := mustGrid(t, "...P")
	boom := errors.New("boom")

	_, err := bfs.MultiSource(g, []coord.Coord2{{X: 0, Y: 0}}, 1,
		bfs.WithOnVisit(func(c coord.Coord2, _ int) error {
			if c.X == 2 {
				return boom
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.MultiSource(g, []coord.Coord2{{X: 0, Y: 0}}, 1, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMultiSource_CustomTarget(t *testing.T) {
	g := mustGrid(t, "X..X")
	res, err := bfs.MultiSource(g, []coord.Coord2{{X: 1, Y: 0}}, 2, bfs.WithTarget('X'))
	require.NoError(t, err)
	assert.Equal(t, bfs.Result{First: 1, Depth: 2, Total: 3}, res)
}
