package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wallbreak/gridgraph"
	"github.com/katalvlaran/wallbreak/replay"
)

func newReplayCommand(s *session) *cobra.Command {
	var (
		sf       searchFlags
		interval time.Duration
		lastOnly bool
	)

	cmd := &cobra.Command{
		Use:   "replay FILE|-",
		Short: "Animate the search step by step",
		Long: `Replay the search: first the explored cells in discovery order, then the
path. One frame is printed per interval.

Examples:
  wallbreak replay maze.txt
  wallbreak replay --boon --interval 100ms maze.txt`,
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

			player := replay.NewPlayer(g, res)
			if player.Total() == 0 {
				fmt.Fprintln(s.out, "nothing to replay")
				return nil
			}
			if lastOnly {
				player.Seek(player.Total())
				printFrame(s, g, player.Frame())
				return nil
			}
			return player.Play(cmd.Context(), interval, func(f replay.Frame) error {
				printFrame(s, g, f)
				return nil
			})
		},
	}
	sf.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", replay.DefaultInterval, "Delay between frames")
	cmd.Flags().BoolVar(&lastOnly, "last", false, "Print only the final frame")
	return cmd
}

// printFrame writes a header line and the rendered grid for f.
func printFrame(s *session, g *gridgraph.Grid, f replay.Frame) {
	current := "-"
	if f.Current != nil {
		current = f.Current.String()
	}
	fmt.Fprintf(s.out, "%d/%d %s %s", f.Step, f.Total, f.Phase, current)
	if f.BrokenWall != nil {
		fmt.Fprintf(s.out, " broken %s", f.BrokenWall)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, gridgraph.Render(g, f.Overlay()))
}
