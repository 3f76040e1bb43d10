// Package segment analyses wire paths grown through 3-D space.
//
// What
//
//   - A wire path is a sequence of Steps, each a Direction (U, D, R, L, F,
//     B) and a unit count, walked from the origin.
//   - Walking a path one unit at a time marks every cell it passes; the
//     union over all paths is the segment set, an implicit undirected
//     graph where two segments are adjacent iff they differ by one unit
//     along exactly one axis (six-connected).
//   - The last cell of each path is a leaf.
//   - Murkiness scores every axis segment (X == 0 && Z == 0) with the sum,
//     over all leaves, of its BFS distance from that leaf.
//
// Adjacency is never materialised: Neighbors computes it on demand from
// coordinate arithmetic and set membership.
//
// Complexity (S = |segments|, L = |leaves|)
//
//   - Build:     O(total path length)
//   - Distances: O(S) per leaf
//   - Murkiness: O(L·S)
//
// Errors
//
//   - ErrBadDirection, ErrBadCount, ErrEmptyStep while parsing.
//   - ErrNoAxisSegment when no leaf reaches an axis segment; inputs are
//     expected to always reach the trunk, so callers treat it as fatal.
package segment
