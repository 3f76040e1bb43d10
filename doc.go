// Package quests solves a set of grid and graph puzzles, each read from a
// small text input and answered with a single integer.
//
// The solvers live in one package per algorithm:
//
//   - coord:     2-D and 3-D integer lattice points
//   - gridgraph: immutable rune grid with four-way adjacency
//   - dijkstra:  weighted search over a grid of terrain levels (quest 13)
//   - segment:   3-D wire segments, leaf BFS and murkiness (quest 14)
//   - bfs:       multi-source flood and best single start (quest 18)
//   - catapult:  target and meteor ranking (quest 12)
//
// The quests command in cmd/quests reads the inputs and prints the answers.
package quests
