package replay

import (
	"context"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/wallbreak/bfs"
	"github.com/katalvlaran/wallbreak/gridgraph"
)

// DefaultInterval is the auto-play delay between steps.
const DefaultInterval = 30 * time.Millisecond

// Phase tells which part of the result a step is revealing.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseExploring
	PhaseRevealing
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExploring:
		return "exploring"
	case PhaseRevealing:
		return "revealing"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Frame is the visible state at one step.
type Frame struct {
	Step  int
	Total int
	Phase Phase

	// Trace is the revealed prefix of the discovery order.
	Trace []gridgraph.Coord
	// Visited holds the distinct coordinates in Trace.
	Visited mapset.Set[gridgraph.Coord]
	// Path is the revealed prefix of the solution path.
	Path []gridgraph.Coord
	// Current is the coordinate revealed by this step (nil at step 0).
	Current *gridgraph.Coord
	// BrokenWall is set once the revealed path includes the broken wall.
	BrokenWall *gridgraph.Coord
}

// Overlay converts the frame for gridgraph.Render.
func (f Frame) Overlay() gridgraph.Overlay {
	return gridgraph.Overlay{Visited: f.Trace, Path: f.Path}
}

// Player steps through a search result.
type Player struct {
	grid   *gridgraph.Grid
	result bfs.Result
	step   int

	brokenAt   int // index of the broken wall in result.Path, -1 if none
	brokenWall gridgraph.Coord
}

// NewPlayer creates a player positioned at step 0.
func NewPlayer(g *gridgraph.Grid, res bfs.Result) *Player {
	p := &Player{grid: g, result: res, brokenAt: -1}
	if wall, ok := res.BrokenWall(g); ok {
		p.brokenWall = wall
		for i, c := range res.Path {
			if c == wall {
				p.brokenAt = i
				break
			}
		}
	}
	return p
}

// Total returns the number of steps: len(Visited) + len(Path).
func (p *Player) Total() int {
	return len(p.result.Visited) + len(p.result.Path)
}

// Step returns the current step.
func (p *Player) Step() int { return p.step }

// AtStart reports whether the player is at step 0.
func (p *Player) AtStart() bool { return p.step == 0 }

// AtEnd reports whether every step has been revealed.
func (p *Player) AtEnd() bool { return p.step == p.Total() }

// Next advances one step. It reports false when already at the end.
func (p *Player) Next() bool {
	if p.AtEnd() {
		return false
	}
	p.step++
	return true
}

// Prev goes back one step. It reports false when already at the start.
func (p *Player) Prev() bool {
	if p.AtStart() {
		return false
	}
	p.step--
	return true
}

// Reset rewinds to step 0.
func (p *Player) Reset() { p.step = 0 }

// Seek jumps to step n, clamped to [0, Total], and returns the new step.
func (p *Player) Seek(n int) int {
	p.step = min(max(n, 0), p.Total())
	return p.step
}

// Phase returns the phase of the current step.
func (p *Player) Phase() Phase {
	switch {
	case p.step == 0:
		return PhaseIdle
	case p.step == p.Total():
		return PhaseDone
	case p.step <= len(p.result.Visited):
		return PhaseExploring
	default:
		return PhaseRevealing
	}
}

// Frame snapshots the current step.
func (p *Player) Frame() Frame {
	visitedCount := len(p.result.Visited)
	traceLen := min(p.step, visitedCount)
	pathLen := max(p.step-visitedCount, 0)

	f := Frame{
		Step:    p.step,
		Total:   p.Total(),
		Phase:   p.Phase(),
		Trace:   append([]gridgraph.Coord{}, p.result.Visited[:traceLen]...),
		Visited: mapset.New[gridgraph.Coord](),
		Path:    append([]gridgraph.Coord{}, p.result.Path[:pathLen]...),
	}
	for _, c := range f.Trace {
		f.Visited.Put(c)
	}

	switch {
	case pathLen > 0:
		cur := f.Path[pathLen-1]
		f.Current = &cur
	case traceLen > 0:
		cur := f.Trace[traceLen-1]
		f.Current = &cur
	}
	if p.brokenAt >= 0 && pathLen > p.brokenAt {
		wall := p.brokenWall
		f.BrokenWall = &wall
	}
	return f
}

// Play advances one step per interval, calling fn with each new frame, until
// the end is reached, ctx is cancelled, or fn returns an error. A
// non-positive interval means DefaultInterval.
func (p *Player) Play(ctx context.Context, interval time.Duration, fn func(Frame) error) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !p.AtEnd() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		p.Next()
		if err := fn(p.Frame()); err != nil {
			return err
		}
	}
	return nil
}
