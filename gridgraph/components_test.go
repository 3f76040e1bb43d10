// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestComponents_Simple4 tests Components on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid ('#' = wall, '.' = open):
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
func TestComponents_Simple4(t *testing.T) {
	g, err := FromLines(
		"#..#",
		"..##",
		"##..",
	)
	if err != nil {
		t.Fatalf("FromLines failed: %v", err)
	}

	comps := g.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}

	labels := g.ComponentOf()
	if labels[g.Index(g.Coordinate(0))] != -1 {
		t.Errorf("wall cell labelled %d; want -1", labels[0])
	}
	if labels[1] != labels[4] {
		t.Errorf("cells (1,0) and (0,1) should share a component")
	}
	if labels[1] == labels[10] {
		t.Errorf("cells (1,0) and (2,2) should not share a component")
	}
}

// TestComponents_Diagonal8 uses Conn8 to join cells that only touch at corners.
//
// Grid:
//
//	. # .
//	# . #
//	. # .
//
// With Conn8 all five open cells form one region.
func TestComponents_Diagonal8(t *testing.T) {
	opts := DefaultGridOptions()
	opts.Conn = Conn8
	g, err := NewGrid([][]rune{[]rune(".#."), []rune("#.#"), []rune(".#.")}, opts)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	comps := g.Components()
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 5 {
		t.Errorf("component size = %d; want 5", size)
	}
}

// TestComponents_AllWalls tests edge cases:
//   - grid made only of walls → zero components
//   - single open cell → one component of size 1
func TestComponents_AllWalls(t *testing.T) {
	g1, _ := FromLines("##", "##")
	if comps := g1.Components(); len(comps) != 0 {
		t.Errorf("all walls: got %d components; want 0", len(comps))
	}

	g2, _ := FromLines("#.")
	comps := g2.Components()
	if len(comps) != 1 {
		t.Fatalf("single open: got %d components; want 1", len(comps))
	}
	if !reflect.DeepEqual(comps[0], []int{1}) {
		t.Errorf("single open: component = %v; want [1]", comps[0])
	}
}
