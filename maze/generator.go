package maze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/wallbreak/bfs"
	"github.com/katalvlaran/wallbreak/gridgraph"
)

const (
	MinSize            = 3
	DefaultRows        = 10
	DefaultCols        = 15
	DefaultDensity     = 0.25
	DefaultMaxAttempts = 1000
)

var (
	ErrInvalidOptions = errors.New("maze: invalid options")
)

// Maze is a generated grid plus how it was obtained.
type Maze struct {
	ID       uuid.UUID
	Grid     *gridgraph.Grid
	Seed     int64
	Attempts int  // Attempts used, including the accepted one
	Fallback bool // True when MaxAttempts ran out and an open grid was returned
}

// Generator creates solvable mazes.
type Generator struct {
	options *Options
	seed    int64
	rng     *rand.Rand
	logger  *slog.Logger

	// sprinkle places walls on a fresh grid for one attempt.
	sprinkle func(g *gridgraph.Grid)
}

// New creates a maze generator with the given options. Sizes below MinSize
// are raised to MinSize and a zero MaxAttempts becomes DefaultMaxAttempts.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}
	opts := *options
	opts.Rows = max(opts.Rows, MinSize)
	opts.Cols = max(opts.Cols, MinSize)
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	gen := &Generator{
		options: &opts,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger,
	}
	gen.sprinkle = gen.randomWalls
	return gen
}

// Options returns the effective (clamped) options.
func (g *Generator) Options() Options {
	return *g.options
}

// Generate creates a new maze solvable without breaking a wall.
// Returns ErrInvalidOptions for a density outside [0, 1) or negative
// MaxAttempts, and ctx.Err() if the context is cancelled between attempts.
func (g *Generator) Generate(ctx context.Context) (*Maze, error) {
	if g.options.Density < 0 || g.options.Density >= 1 {
		return nil, fmt.Errorf("%w: density %v must be in [0, 1)", ErrInvalidOptions, g.options.Density)
	}
	if g.options.MaxAttempts < 0 {
		return nil, fmt.Errorf("%w: max attempts %d cannot be negative", ErrInvalidOptions, g.options.MaxAttempts)
	}

	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return nil, fmt.Errorf("maze: generate id: %w", err)
	}
	logger := g.logger.With("maze_id", id.String(), "rows", g.options.Rows, "cols", g.options.Cols)

	for attempt := 1; attempt <= g.options.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		grid := gridgraph.New(g.options.Rows, g.options.Cols)
		g.sprinkle(grid)

		if bfs.FindPath(grid, false).Found() {
			logger.Debug("Maze accepted.", "attempt", attempt, "walls", grid.WallCount())
			return &Maze{ID: id, Grid: grid, Seed: g.seed, Attempts: attempt}, nil
		}
		logger.Debug("Maze rejected, goal unreachable.", "attempt", attempt)
	}

	logger.Warn("Attempts exhausted, falling back to an open grid.", "max_attempts", g.options.MaxAttempts)
	return &Maze{
		ID:       id,
		Grid:     gridgraph.New(g.options.Rows, g.options.Cols),
		Seed:     g.seed,
		Attempts: g.options.MaxAttempts,
		Fallback: true,
	}, nil
}

// randomWalls performs floor(rows·cols·density) random wall placements,
// skipping start and goal.
func (g *Generator) randomWalls(grid *gridgraph.Grid) {
	rows, cols := grid.Rows(), grid.Cols()
	picks := int(float64(rows*cols) * g.options.Density)
	start, goal := grid.Start(), grid.Goal()
	for i := 0; i < picks; i++ {
		c := gridgraph.Coord{Row: g.rng.Intn(rows), Col: g.rng.Intn(cols)}
		if c == start || c == goal {
			continue
		}
		_ = grid.Set(c, gridgraph.Wall)
	}
}
