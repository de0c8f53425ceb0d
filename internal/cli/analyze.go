package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wallbreak/bfs"
)

func newAnalyzeCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE|-",
		Short: "Print maze statistics",
		Long: `Print the size and wall count of a maze, whether the goal is reachable
without breaking walls, the fewest walls any route must break, and the
shortest path length with and without the boon.`,
		Args: oneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(s.in, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "rows: %d\n", g.Rows())
			fmt.Fprintf(s.out, "cols: %d\n", g.Cols())
			fmt.Fprintf(s.out, "walls: %d\n", g.WallCount())
			fmt.Fprintf(s.out, "connected: %t\n", g.Connected())
			if breaks, err := g.MinBreaks(); err == nil {
				fmt.Fprintf(s.out, "min breaks: %d\n", breaks)
			} else {
				fmt.Fprintln(s.out, "min breaks: none")
			}

			plain := bfs.FindPath(g, false)
			boon := bfs.FindPath(g, true)
			fmt.Fprintf(s.out, "steps: %s\n", formatSteps(plain.Steps()))
			fmt.Fprintf(s.out, "steps with boon: %s\n", formatSteps(boon.Steps()))
			if wall, ok := boon.BrokenWall(g); ok {
				fmt.Fprintf(s.out, "boon breaks: %s\n", wall)
			}
			return nil
		},
	}
}
