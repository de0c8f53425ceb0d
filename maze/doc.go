// Package maze generates random grids that are guaranteed to be solvable
// without breaking a wall.
//
// Each attempt starts from an all-Free grid and performs
// floor(Rows·Cols·Density) random wall placements (start and goal are
// skipped; repeated picks are allowed, so the final wall count may be lower).
// The first attempt for which bfs.FindPath(grid, false) finds a path is
// accepted.
//
// The retry loop is bounded by Options.MaxAttempts. When every attempt fails
// the generator returns an open grid (no walls) and marks the Maze as a
// Fallback, so generation always terminates with a solvable maze.
//
// A non-zero Options.Seed makes generation, including the Maze ID,
// reproducible.
package maze
