// Package gridgraph models a rectangular maze of Free and Wall cells as the
// state space searched by the bfs package.
//
// What:
//
//   - Grid wraps a rectangular matrix of Cell values (Free or Wall), stored
//     row-major. Start is always (0,0); Goal is always (Rows-1, Cols-1).
//   - Coord is a 0-indexed (Row, Col) pair; State pairs a Coord with the
//     WallsBroken flag (0 or 1) so a single wall break becomes an ordinary
//     graph edge.
//   - Neighbors enumerates in-bounds orthogonal neighbours in the fixed order
//     East, West, South, North. Searches rely on this order for reproducible
//     paths and discovery traces.
//   - Region collects the free cells 4-connected to a coordinate.
//   - MinBreaks runs a 0-1 BFS to count the fewest walls that must be crossed
//     between Start and Goal.
//   - Parse / String read and write the text format: one row per line,
//     '.' for Free and '#' for Wall.
//   - Render draws a grid with a search overlay (visited cells and path).
//
// Why:
//
//   - Keep the grid small and explicit: the search never validates input, so
//     From2D, FromInts and Parse are the places where shape and values are
//     checked.
//
// Complexity:
//
//   - Neighbors, At, InBounds:  O(1).
//   - Region:                   O(R×C), Memory: O(R×C).
//   - MinBreaks:                O(R×C), Memory: O(R×C).
//   - Parse, String, Render:    O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:      the grid has no rows or no columns (MinBreaks).
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell:    a value is neither Free nor Wall.
//   - ErrOutOfBounds:    a coordinate lies outside the grid.
//   - ErrFixedCell:      Toggle was asked to flip Start or Goal.
package gridgraph
