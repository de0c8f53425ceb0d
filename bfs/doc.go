// Package bfs finds shortest paths across a gridgraph.Grid from the top-left
// cell to the bottom-right cell, optionally allowing one wall to be broken,
// and records the full discovery order so the search can be replayed.
//
// What
//
//   - FindPath(grid, canBreakWall) is the core operation. It returns a Result:
//   - Path:    coordinates from Start to Goal inclusive, or empty if unreachable
//   - Visited: coordinates in the order states were dequeued (discovery trace)
//   - The search runs over augmented states (coordinate, wallsBroken) with
//     wallsBroken ∈ {0,1}. Entering a Free cell keeps wallsBroken; entering a
//     Wall cell is allowed only when the break is enabled and unused, and
//     moves the search into the wallsBroken=1 layer.
//   - Search exposes the same walk with functional options:
//   - WithWallBreak (the capability flag)
//   - WithContext (cancellation between dequeues)
//   - WithMaxStates (bound the number of dequeues)
//   - OnEnqueue / OnDequeue / OnVisit hooks (OnVisit may abort with an error)
//
// Why
//
//   - Widening nodes to (position, used-break) pairs turns the special move
//     into ordinary edges, so plain BFS still yields a minimum-length path:
//     states are dequeued in non-decreasing path length and each is enqueued
//     at most once. Enabling the break only adds edges, so the path with the
//     break is never longer than the path without it.
//
// Determinism
//
//	Neighbours are expanded in gridgraph.Directions order (East, West, South,
//	North) and the frontier is strictly FIFO, so for a given grid and flag
//	both Path and Visited are reproducible call after call.
//
// Edge cases
//
//   - Empty grid (zero rows or columns, or nil): empty Path, empty Visited.
//   - Single cell: Path = Visited = [(0,0)].
//   - Unreachable goal: empty Path, Visited holds every discovered state's
//     coordinate (a coordinate may appear twice, once per wallsBroken layer).
//   - A successful trace always ends with the goal coordinate.
//
// Complexity (R×C grid)
//
//   - Time:   O(R·C)  (at most 2·R·C states, each expanded once)
//   - Memory: O(R·C)  (state arena with parent links, visited flags, trace)
//
// The path is rebuilt once from parent links at termination rather than
// copied into every queue entry; the result is identical.
//
// Usage
//
//	res := bfs.FindPath(g, true)
//	if res.Found() {
//	    wall, broke := res.BrokenWall(g)
//	    ...
//	}
//
//	res, err := bfs.Search(
//	    g,
//	    bfs.WithWallBreak(true),
//	    bfs.WithContext(ctx),
//	    bfs.WithOnVisit(func(s gridgraph.State) error { /* ... */ return nil }),
//	)
//
// Errors (Search only; FindPath never fails)
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  for invalid options (e.g. negative MaxStates).
//   - ErrStateLimit       when MaxStates dequeues happen without reaching the goal.
//   - ctx.Err()           on cancellation.
//   - Wrapped errors returned by OnVisit.
package bfs
