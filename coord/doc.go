// Package coord provides the small integer point types shared by every
// solver in this module.
//
// What:
//
//   - Coord2 addresses a grid cell by (X, Y), X growing rightwards and Y
//     growing downwards (row index).
//   - Coord3 addresses a unit cell of 3-D space by (X, Y, Z).
//   - Both are comparable value types: use == for equality and use them
//     directly as map keys for visited sets.
//
// Offsets:
//
//   - Orthogonal2 lists the four unit moves in the order up, right, down,
//     left, matching gridgraph's Conn4 neighbor order.
//   - Orthogonal3 lists the six unit moves of six-connected adjacency.
package coord
