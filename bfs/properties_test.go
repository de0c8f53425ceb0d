package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wallbreak/bfs"
	"github.com/katalvlaran/wallbreak/gridgraph"
)

const (
	// seedDet keeps random grids reproducible across runs.
	seedDet = int64(7)
	// trials is the number of random grids checked per property.
	trials = 300
)

// randomGrids returns n grids of random size (1..8 × 1..8) with a random wall
// density in [0, 0.5). Start and goal may be walls too.
func randomGrids(n int) []*gridgraph.Grid {
	rnd := rand.New(rand.NewSource(seedDet))
	out := make([]*gridgraph.Grid, n)
	for i := range out {
		rows, cols := 1+rnd.Intn(8), 1+rnd.Intn(8)
		density := rnd.Float64() * 0.5
		g := gridgraph.New(rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if rnd.Float64() < density {
					_ = g.Set(gridgraph.Coord{Row: r, Col: c}, gridgraph.Wall)
				}
			}
		}
		out[i] = g
	}
	return out
}

// referenceFindPath is the path-carrying formulation: every queue entry holds
// its own copy of the path so far. It must agree exactly with FindPath.
func referenceFindPath(g *gridgraph.Grid, canBreakWall bool) bfs.Result {
	type entry struct {
		state gridgraph.State
		path  []gridgraph.Coord
	}
	if g.Empty() {
		return bfs.Result{Path: []gridgraph.Coord{}, Visited: []gridgraph.Coord{}}
	}
	visited := map[gridgraph.State]bool{}
	start := gridgraph.State{Coord: g.Start()}
	visited[start] = true
	queue := []entry{{state: start, path: []gridgraph.Coord{g.Start()}}}
	trace := []gridgraph.Coord{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		trace = append(trace, cur.state.Coord)
		if cur.state.Coord == g.Goal() {
			return bfs.Result{Path: cur.path, Visited: trace}
		}
		for _, d := range gridgraph.Directions {
			nb := cur.state.Coord.Add(d)
			if !g.InBounds(nb) {
				continue
			}
			np := append(append([]gridgraph.Coord{}, cur.path...), nb)
			if g.At(nb) == gridgraph.Free {
				next := gridgraph.State{Coord: nb, WallsBroken: cur.state.WallsBroken}
				if !visited[next] {
					visited[next] = true
					queue = append(queue, entry{state: next, path: np})
				}
			} else if canBreakWall && cur.state.WallsBroken == 0 {
				next := gridgraph.State{Coord: nb, WallsBroken: 1}
				if !visited[next] {
					visited[next] = true
					queue = append(queue, entry{state: next, path: np})
				}
			}
		}
	}
	return bfs.Result{Path: []gridgraph.Coord{}, Visited: trace}
}

// TestProperty_MatchesReference checks bit-identical output against the
// path-carrying formulation.
func TestProperty_MatchesReference(t *testing.T) {
	for i, g := range randomGrids(trials) {
		for _, brk := range []bool{false, true} {
			want := referenceFindPath(g, brk)
			got := bfs.FindPath(g, brk)
			require.Equal(t, want, got, "grid #%d (break=%v):\n%s", i, brk, g)
		}
	}
}

// TestProperty_MinBreaksOracle compares reachability with the 0-1 BFS oracle.
func TestProperty_MinBreaksOracle(t *testing.T) {
	for i, g := range randomGrids(trials) {
		need, err := g.MinBreaks()
		require.NoError(t, err)
		assert.Equal(t, need == 0, bfs.FindPath(g, false).Found(), "grid #%d:\n%s", i, g)
		assert.Equal(t, need <= 1, bfs.FindPath(g, true).Found(), "grid #%d:\n%s", i, g)
	}
}

// TestProperty_PathShape validates each returned path: contiguous unit steps,
// fixed endpoints, legal cells, and at most one broken wall.
func TestProperty_PathShape(t *testing.T) {
	for i, g := range randomGrids(trials) {
		for _, brk := range []bool{false, true} {
			res := bfs.FindPath(g, brk)
			require.NotEmpty(t, res.Visited, "grid #%d", i)
			assert.Equal(t, g.Start(), res.Visited[0], "visited must begin at start")
			if !res.Found() {
				continue
			}
			assert.Equal(t, g.Start(), res.Path[0])
			assert.Equal(t, g.Goal(), res.Path[len(res.Path)-1])
			assert.Equal(t, g.Goal(), res.Visited[len(res.Visited)-1], "visited must end at goal")
			for k := 1; k < len(res.Path); k++ {
				a, b := res.Path[k-1], res.Path[k]
				assert.Equal(t, 1, abs(a.Row-b.Row)+abs(a.Col-b.Col), "non-adjacent step %s→%s", a, b)
			}
			walls := countWalls(g, res.Path)
			if brk {
				assert.LessOrEqual(t, walls, 1, "grid #%d:\n%s", i, g)
			} else {
				assert.Zero(t, walls, "grid #%d:\n%s", i, g)
			}
		}
	}
}

// TestProperty_MonotonicBenefit: the boon never lengthens a path.
func TestProperty_MonotonicBenefit(t *testing.T) {
	for i, g := range randomGrids(trials) {
		without := bfs.FindPath(g, false)
		with := bfs.FindPath(g, true)
		if without.Found() {
			require.True(t, with.Found(), "grid #%d", i)
			assert.LessOrEqual(t, len(with.Path), len(without.Path), "grid #%d:\n%s", i, g)
		}
	}
}

// TestProperty_OpenFieldDistance: without walls, steps equal the Manhattan distance.
func TestProperty_OpenFieldDistance(t *testing.T) {
	for rows := 1; rows <= 6; rows++ {
		for cols := 1; cols <= 6; cols++ {
			g := gridgraph.New(rows, cols)
			for _, brk := range []bool{false, true} {
				res := bfs.FindPath(g, brk)
				assert.Equal(t, (rows-1)+(cols-1), res.Steps(), "%d×%d", rows, cols)
			}
		}
	}
}

// TestProperty_Determinism: repeated calls return identical results.
func TestProperty_Determinism(t *testing.T) {
	for _, g := range randomGrids(50) {
		for _, brk := range []bool{false, true} {
			assert.Equal(t, bfs.FindPath(g, brk), bfs.FindPath(g, brk))
		}
	}
}

// TestProperty_UnreachableTraceIsRegion: a failed break-free search discovers
// exactly the start's free region, each cell once.
func TestProperty_UnreachableTraceIsRegion(t *testing.T) {
	for i, g := range randomGrids(trials) {
		res := bfs.FindPath(g, false)
		if res.Found() {
			continue
		}
		assert.Equal(t, g.Region(g.Start()), res.Visited, "grid #%d:\n%s", i, g)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
