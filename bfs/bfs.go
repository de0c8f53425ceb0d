// Package bfs runs breadth-first search over (coordinate, wallsBroken)
// states of a gridgraph.Grid, returning the shortest path from Start to
// Goal and the discovery order of every dequeued state.
package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/wallbreak/gridgraph"
)

// noParent marks the root record in the arena.
const noParent = -1

// record is a frontier entry: a state plus the arena index of the record it
// was discovered from. Following parents back to the root yields the path.
type record struct {
	state  gridgraph.State
	parent int
}

// walker encapsulates mutable search state. It lives for one call.
type walker struct {
	grid    *gridgraph.Grid
	opts    Options
	goal    gridgraph.Coord
	arena   []record
	queue   *queue.Queue[int]
	visited [][2]bool // per cell: one flag per wallsBroken value
	trace   []gridgraph.Coord
}

// FindPath returns the shortest path from (0,0) to (Rows-1, Cols-1) and the
// discovery trace. With canBreakWall set, at most one Wall cell may be
// entered along the way. FindPath never fails: a nil or empty grid yields an
// empty Result, and an unreachable goal yields an empty Path with the full
// trace in Visited.
func FindPath(g *gridgraph.Grid, canBreakWall bool) Result {
	res, err := Search(g, WithWallBreak(canBreakWall))
	if err != nil {
		return emptyResult()
	}
	return res
}

// Search runs the wall-breaking BFS on g, applying any number of functional
// Options. Returns ErrGridNil for a nil grid, ErrOptionViolation for bad
// options, ErrStateLimit when MaxStates is exhausted, ctx.Err() on
// cancellation, or the wrapped OnVisit error. On abort the Result holds the
// trace gathered so far and an empty Path.
func Search(g *gridgraph.Grid, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return emptyResult(), o.err
	}
	if g == nil {
		return emptyResult(), ErrGridNil
	}
	// Zero rows or columns: nothing to search.
	if g.Empty() {
		return emptyResult(), nil
	}

	cells := g.Rows() * g.Cols()
	w := &walker{
		grid:    g,
		opts:    o,
		goal:    g.Goal(),
		arena:   make([]record, 0, cells),
		queue:   queue.New[int](),
		visited: make([][2]bool, cells),
		trace:   make([]gridgraph.Coord, 0, cells),
	}

	// Seed with the start state (no parent, no wall broken).
	w.enqueue(gridgraph.State{Coord: g.Start()}, noParent)

	return w.loop()
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or the search is aborted.
func (w *walker) loop() (Result, error) {
	for !w.queue.Empty() {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.partial(), w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxStates > 0 && len(w.trace) >= w.opts.MaxStates {
			return w.partial(), fmt.Errorf("%w: %d states dequeued", ErrStateLimit, len(w.trace))
		}

		idx := w.dequeue()
		if err := w.visit(idx); err != nil {
			return w.partial(), err
		}
		if w.arena[idx].state.Coord == w.goal {
			return Result{Path: w.pathTo(idx), Visited: w.trace}, nil
		}
		w.expand(idx)
	}

	// Queue drained without reaching the goal.
	return w.partial(), nil
}

// enqueue marks s visited, records it in the arena, calls OnEnqueue and
// adds its arena index to the queue. Callers check visited first.
func (w *walker) enqueue(s gridgraph.State, parent int) {
	w.visited[w.cell(s.Coord)][s.WallsBroken] = true
	w.arena = append(w.arena, record{state: s, parent: parent})
	w.opts.OnEnqueue(s)
	w.queue.Enqueue(len(w.arena) - 1)
}

// dequeue pops the oldest arena index and invokes OnDequeue.
func (w *walker) dequeue() int {
	idx := w.queue.Dequeue()
	w.opts.OnDequeue(w.arena[idx].state)
	return idx
}

// visit appends the state's coordinate to the trace and calls OnVisit.
// The trace entry is written before the goal check, so a successful trace
// ends with the goal.
func (w *walker) visit(idx int) error {
	s := w.arena[idx].state
	w.trace = append(w.trace, s.Coord)
	if err := w.opts.OnVisit(s); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", s, err)
	}
	return nil
}

// expand enqueues every admissible successor of the state at idx, in
// gridgraph.Directions order:
//   - Free neighbour: same wallsBroken layer.
//   - Wall neighbour: only with the break enabled and unused; moves to layer 1.
func (w *walker) expand(idx int) {
	cur := w.arena[idx].state
	for _, nb := range w.grid.Neighbors(cur.Coord) {
		if w.grid.At(nb) == gridgraph.Free {
			next := gridgraph.State{Coord: nb, WallsBroken: cur.WallsBroken}
			if !w.seen(next) {
				w.enqueue(next, idx)
			}
			continue
		}
		if w.opts.BreakWall && cur.WallsBroken == 0 {
			next := gridgraph.State{Coord: nb, WallsBroken: 1}
			if !w.seen(next) {
				w.enqueue(next, idx)
			}
		}
	}
}

// seen reports whether s was already enqueued.
func (w *walker) seen(s gridgraph.State) bool {
	return w.visited[w.cell(s.Coord)][s.WallsBroken]
}

// cell maps c to its row-major index.
func (w *walker) cell(c gridgraph.Coord) int {
	return c.Row*w.grid.Cols() + c.Col
}

// pathTo rebuilds the Start→state path by following parent links.
func (w *walker) pathTo(idx int) []gridgraph.Coord {
	path := []gridgraph.Coord{}
	for at := idx; at != noParent; at = w.arena[at].parent {
		path = append(path, w.arena[at].state.Coord)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// partial packages a search that ended without reaching the goal.
func (w *walker) partial() Result {
	return Result{Path: []gridgraph.Coord{}, Visited: w.trace}
}
