package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quests/coord"
	"github.com/katalvlaran/quests/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]rune
		err  error
	}{
		{"EmptyRows", [][]rune{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]rune{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]rune{[]rune("ab"), []rune("c")}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.rows, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	rows := [][]rune{[]rune("ab"), []rune("cd")}
	g, err := gridgraph.NewGrid(rows, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	rows[0][0] = 'z'
	r, ok := g.At(coord.New2(0, 0))
	require.True(t, ok)
	assert.Equal(t, 'a', r)
}

// TestInBounds checks InBounds and At on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.FromLines("S.#", "..E")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)

	for _, c := range []coord.Coord2{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}} {
		assert.True(t, g.InBounds(c), "InBounds%v", c)
	}
	for _, c := range []coord.Coord2{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}} {
		assert.False(t, g.InBounds(c), "InBounds%v", c)
		_, ok := g.At(c)
		assert.False(t, ok, "At%v", c)
	}
	r, ok := g.At(coord.New2(2, 1))
	require.True(t, ok)
	assert.Equal(t, 'E', r)
}

func TestPassableAndBorder(t *testing.T) {
	g, err := gridgraph.FromLines(
		"#.#",
		"...",
		"#.#",
	)
	require.NoError(t, err)

	assert.False(t, g.Passable(coord.New2(0, 0)), "wall")
	assert.True(t, g.Passable(coord.New2(1, 1)))
	assert.False(t, g.Passable(coord.New2(5, 5)), "out of range")

	assert.True(t, g.IsBorder(coord.New2(1, 0)))
	assert.True(t, g.IsBorder(coord.New2(2, 1)))
	assert.False(t, g.IsBorder(coord.New2(1, 1)))
	assert.False(t, g.IsBorder(coord.New2(-1, 1)))
}

// TestNeighbors_Order checks the up, right, down, left order and wall skipping.
func TestNeighbors_Order(t *testing.T) {
	g, err := gridgraph.FromLines(
		".#.",
		"...",
		"...",
	)
	require.NoError(t, err)

	got := g.Neighbors(nil, coord.New2(1, 1))
	assert.Equal(t, []coord.Coord2{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}}, got)

	got = g.Neighbors(got[:0], coord.New2(0, 0))
	assert.Equal(t, []coord.Coord2{{X: 0, Y: 1}}, got)
}

func TestNeighbors_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	g, err := gridgraph.NewGrid([][]rune{[]rune(".."), []rune("..")}, opts)
	require.NoError(t, err)

	assert.Len(t, g.NeighborOffsets(), 8)
	assert.ElementsMatch(t, []coord.Coord2{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, g.Neighbors(nil, coord.New2(0, 0)))
}

func TestFindAndCount(t *testing.T) {
	g, err := gridgraph.FromLines(
		"P.P",
		".S.",
		"P..",
	)
	require.NoError(t, err)

	s, ok := g.Find('S')
	require.True(t, ok)
	assert.Equal(t, coord.New2(1, 1), s)

	_, ok = g.Find('E')
	assert.False(t, ok)

	assert.Equal(t, 3, g.Count('P'))
	assert.Equal(t, []coord.Coord2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}, g.FindAll('P'))
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := gridgraph.FromLines("abcd", "efgh")
	require.NoError(t, err)

	for i := 0; i < g.Width*g.Height; i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	assert.Equal(t, coord.New2(1, 1), g.Coordinate(5))
}
