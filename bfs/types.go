// Package bfs provides tunable options, the Result type and error
// definitions for the wall-breaking grid search.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wallbreak/gridgraph"
)

// Sentinel errors for Search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed to Search.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStateLimit is returned when the MaxStates budget runs out.
	ErrStateLimit = errors.New("bfs: state limit reached")
)

// Option configures Search via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customise a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// BreakWall enables the one-time wall break.
	BreakWall bool

	// MaxStates, if > 0, aborts the search with ErrStateLimit once that many
	// states have been dequeued without reaching the goal. 0 means no limit.
	MaxStates int

	// OnEnqueue is called when a state is marked visited and enqueued.
	OnEnqueue func(s gridgraph.State)

	// OnDequeue is called immediately after a state leaves the queue.
	OnDequeue func(s gridgraph.State)

	// OnVisit is called after the state's coordinate is appended to the
	// trace and before the goal check. A non-nil error aborts the search.
	OnVisit func(s gridgraph.State) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - wall break disabled
//   - no state limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		BreakWall: false,
		MaxStates: 0,
		OnEnqueue: func(gridgraph.State) {},
		OnDequeue: func(gridgraph.State) {},
		OnVisit:   func(gridgraph.State) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWallBreak enables or disables the one-time wall break.
func WithWallBreak(enabled bool) Option {
	return func(o *Options) {
		o.BreakWall = enabled
	}
}

// WithMaxStates bounds the number of dequeued states.
//
//	n > 0: abort with ErrStateLimit after n dequeues
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxStates = n
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s gridgraph.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s gridgraph.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(s gridgraph.State) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Path: Start to Goal inclusive, or empty when the goal is unreachable.
//   - Visited: coordinates in discovery order, populated on success and on
//     failure alike.
//
// Both slices are non-nil; "empty" means length zero.
type Result struct {
	Path    []gridgraph.Coord
	Visited []gridgraph.Coord
}

// Found reports whether a path was found.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// Steps returns the number of moves on the path, or -1 if none was found.
func (r Result) Steps() int {
	return len(r.Path) - 1
}

// BrokenWall returns the first path coordinate after Start that holds a
// Wall in g, i.e. the wall the search broke through, if any. Start itself
// is never entered, so its value is ignored.
func (r Result) BrokenWall(g *gridgraph.Grid) (gridgraph.Coord, bool) {
	if len(r.Path) < 2 {
		return gridgraph.Coord{}, false
	}
	for _, c := range r.Path[1:] {
		if g.IsWall(c) {
			return c, true
		}
	}
	return gridgraph.Coord{}, false
}

// Overlay converts r into a gridgraph.Overlay for gridgraph.Render.
func (r Result) Overlay() gridgraph.Overlay {
	return gridgraph.Overlay{Visited: r.Visited, Path: r.Path}
}

// emptyResult is the outcome for empty grids and aborted option parsing.
func emptyResult() Result {
	return Result{Path: []gridgraph.Coord{}, Visited: []gridgraph.Coord{}}
}
