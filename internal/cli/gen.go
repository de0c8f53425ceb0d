package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wallbreak/internal/ctxlog"
	"github.com/katalvlaran/wallbreak/maze"
)

func newGenCommand(s *session) *cobra.Command {
	var (
		rows, cols, attempts int
		density              float64
		seed                 int64
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random maze",
		Long: `Generate a random maze that is solvable without breaking a wall.

Examples:
  wallbreak gen
  wallbreak gen -r 20 -c 30 --density 0.3
  wallbreak gen --seed 42 > maze.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := s.cfg
			flags := cmd.Flags()
			if flags.Changed("rows") {
				cfg.Rows = rows
			}
			if flags.Changed("cols") {
				cfg.Cols = cols
			}
			if flags.Changed("density") {
				cfg.Density = density
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("max-attempts") {
				cfg.MaxAttempts = attempts
			}
			if err := cfg.Validate(); err != nil {
				return usageError("%v", err)
			}

			logger := ctxlog.FromContext(cmd.Context())
			opts := cfg.MazeOptions()
			opts.Logger = logger

			m, err := maze.New(opts).Generate(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to generate maze: %w", err)
			}
			logger.Info("Maze generated.",
				"maze_id", m.ID.String(),
				"seed", m.Seed,
				"attempts", m.Attempts,
				"fallback", m.Fallback,
				"walls", m.Grid.WallCount(),
			)

			_, err = fmt.Fprint(s.out, m.Grid.String())
			return err
		},
	}

	f := cmd.Flags()
	f.IntVarP(&rows, "rows", "r", maze.DefaultRows, "Number of rows (at least 3)")
	f.IntVarP(&cols, "cols", "c", maze.DefaultCols, "Number of columns (at least 3)")
	f.Float64Var(&density, "density", maze.DefaultDensity, "Random wall placements per cell, in [0, 1)")
	f.Int64Var(&seed, "seed", 0, "Random seed (0 picks a time-based seed)")
	f.IntVar(&attempts, "max-attempts", maze.DefaultMaxAttempts, "Attempts before falling back to an open grid")
	return cmd
}
