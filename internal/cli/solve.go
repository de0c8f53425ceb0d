package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wallbreak/bfs"
	"github.com/katalvlaran/wallbreak/gridgraph"
	"github.com/katalvlaran/wallbreak/internal/ctxlog"
)

// searchFlags are shared by solve and replay.
type searchFlags struct {
	boon      bool
	maxStates int
}

func (sf *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&sf.boon, "boon", false, "Allow breaking through one wall")
	cmd.Flags().IntVar(&sf.maxStates, "max-states", 0, "Abort after this many dequeued states (0 = no limit)")
}

// search runs bfs.Search with the config settings overridden by any
// explicitly set flags.
func (sf *searchFlags) search(cmd *cobra.Command, s *session, g *gridgraph.Grid) (bfs.Result, error) {
	cfg := s.cfg
	if cmd.Flags().Changed("boon") {
		cfg.BreakWall = sf.boon
	}
	if cmd.Flags().Changed("max-states") {
		cfg.MaxStates = sf.maxStates
	}
	if err := cfg.Validate(); err != nil {
		return bfs.Result{}, usageError("%v", err)
	}

	opts := append(cfg.SearchOptions(), bfs.WithContext(cmd.Context()))
	res, err := bfs.Search(g, opts...)
	if err != nil {
		return res, fmt.Errorf("search failed: %w", err)
	}
	ctxlog.FromContext(cmd.Context()).Debug("Search finished.",
		"rows", g.Rows(),
		"cols", g.Cols(),
		"break_wall", cfg.BreakWall,
		"visited", len(res.Visited),
		"steps", res.Steps(),
	)
	return res, nil
}

func newSolveCommand(s *session) *cobra.Command {
	var sf searchFlags

	cmd := &cobra.Command{
		Use:   "solve FILE|-",
		Short: "Find the shortest path through a maze",
		Long: `Find the shortest path from the top-left to the bottom-right cell and
print it over the maze. Use "-" to read the maze from standard input.

Legend: S start, G goal, * path, X broken wall, o explored, # wall.

Examples:
  wallbreak solve maze.txt
  wallbreak gen --seed 7 | wallbreak solve --boon -`,
		Args: oneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(s.in, args[0])
			if err != nil {
				return err
			}
			res, err := sf.search(cmd, s, g)
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "steps: %s\n", formatSteps(res.Steps()))
			fmt.Fprintf(s.out, "visited: %d\n", len(res.Visited))
			if wall, ok := res.BrokenWall(g); ok {
				fmt.Fprintf(s.out, "broken wall: %s\n", wall)
			} else {
				fmt.Fprintln(s.out, "broken wall: none")
			}
			fmt.Fprint(s.out, gridgraph.Render(g, res.Overlay()))

			if !res.Found() {
				return &ExitError{Code: 1, Message: fmt.Sprintf("no path from %s to %s", g.Start(), g.Goal())}
			}
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}
