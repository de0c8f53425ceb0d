// Package wallbreak finds shortest paths through grid mazes where the
// traveller may break through at most one wall.
//
// What is wallbreak?
//
//	A small set of packages around one idea: breadth-first search over an
//	augmented state space of (cell, wallsBroken) pairs.
//		• gridgraph: the rectangular Free/Wall grid, parsing and rendering
//		• bfs:       the wall-breaking search, returning path and trace
//		• maze:      seeded random mazes that are solvable without a break
//		• replay:    step-through model of a search for animation
//
// Why an augmented state space?
//
//   - A cell reached after breaking a wall is not the same as the cell
//     reached without; keeping both layers keeps BFS optimal.
//   - Every state is enqueued at most once, so the search is O(R·C).
//
// Layout:
//
//	gridgraph/      Grid, Coord, State, Parse, Render, MinBreaks
//	bfs/            FindPath, Search + functional Options and hooks
//	maze/           Generator with retry ceiling and open-grid fallback
//	replay/         Player, Frame, Phase
//	internal/       config (HCL), ctxlog (slog), cli (cobra)
//	cmd/wallbreak/  the command-line tool
//	examples/       runnable scenarios
//
// Quick ASCII example (S start, G goal, * path, X broken wall, o explored):
//
//	S**
//	##X
//	ooG
//
//	go install github.com/katalvlaran/wallbreak/cmd/wallbreak@latest
package wallbreak
