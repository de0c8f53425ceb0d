package gridgraph

import (
	"container/list"
)

// MinBreaks returns the minimum number of Wall cells that any orthogonal
// route from Start to Goal has to enter. Start's own value is not counted,
// matching how the search treats it.
//
// Behavior:
//  1. Reject empty grids with ErrEmptyGrid.
//  2. 0–1 BFS from Start:
//     • Moving into a Free cell → cost 0 (pushed to the front)
//     • Moving into a Wall cell → cost 1 (pushed to the back)
//  3. Every cell is reachable at some cost, so the result is dist[Goal].
//
// A search allowed one wall break finds a path iff MinBreaks() <= 1; a
// search without the break finds one iff MinBreaks() == 0.
//
// Complexity: O(R·C) time, O(R·C) memory.
func (g *Grid) MinBreaks() (int, error) {
	if g.Empty() {
		return 0, ErrEmptyGrid
	}

	n := g.rows * g.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	for i := range dist {
		dist[i] = inf
	}

	dq := list.New()
	start := g.index(g.Start())
	dist[start] = 0
	dq.PushFront(start)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		uc := g.coordinate(u)
		for _, d := range Directions {
			vc := uc.Add(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.index(vc)
			step := 0
			if g.cells[v] == Wall {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	return dist[g.index(g.Goal())], nil
}
