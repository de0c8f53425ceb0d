package gridgraph

import "strings"

// Render marks used by Render.
const (
	MarkStart      = 'S'
	MarkGoal       = 'G'
	MarkPath       = '*'
	MarkBrokenWall = 'X'
	MarkVisited    = 'o'
	MarkWall       = '#'
	MarkFree       = '.'
)

// Render draws g with the overlay o, one row per line. Precedence per cell:
// start, goal, broken wall (a Wall on the path), path, wall, visited, free.
// Coordinates outside the grid are ignored.
// Complexity: O(R·C + |Visited| + |Path|).
func Render(g *Grid, o Overlay) string {
	if g.Empty() {
		return ""
	}
	onPath := make([]bool, g.rows*g.cols)
	for _, c := range o.Path {
		if g.InBounds(c) {
			onPath[g.index(c)] = true
		}
	}
	seen := make([]bool, g.rows*g.cols)
	for _, c := range o.Visited {
		if g.InBounds(c) {
			seen[g.index(c)] = true
		}
	}

	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	start, goal := g.Start(), g.Goal()
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			at := Coord{Row: r, Col: c}
			i := g.index(at)
			wall := g.cells[i] == Wall
			var mark rune
			switch {
			case at == start:
				mark = MarkStart
			case at == goal:
				mark = MarkGoal
			case onPath[i] && wall:
				mark = MarkBrokenWall
			case onPath[i]:
				mark = MarkPath
			case wall:
				mark = MarkWall
			case seen[i]:
				mark = MarkVisited
			default:
				mark = MarkFree
			}
			sb.WriteRune(mark)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
