package gridgraph

// Region returns the cells reachable from `from` by orthogonal moves through
// Free cells, in BFS discovery order (neighbours taken East, West, South,
// North). `from` itself is always included when in bounds, whatever its
// value; other Wall cells are never entered. Out-of-bounds input yields nil.
//
// Region is exactly the set of coordinates a wall-break-free search
// starting at `from` can discover.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Region(from Coord) []Coord {
	if !g.InBounds(from) {
		return nil
	}
	seen := make([]bool, g.rows*g.cols)
	seen[g.index(from)] = true
	queue := []Coord{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range Directions {
			v := u.Add(d)
			if !g.InBounds(v) || g.At(v) == Wall {
				continue
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

// Connected reports whether Goal lies in Start's free region, i.e. whether
// the maze is solvable without breaking a wall. Empty grids are not connected.
func (g *Grid) Connected() bool {
	if g.Empty() {
		return false
	}
	goal := g.Goal()
	for _, c := range g.Region(g.Start()) {
		if c == goal {
			return true
		}
	}
	return false
}
