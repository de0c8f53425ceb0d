package replay_test

import (
	"fmt"

	"github.com/katalvlaran/wallbreak/bfs"
	"github.com/katalvlaran/wallbreak/gridgraph"
	"github.com/katalvlaran/wallbreak/replay"
)

// ExamplePlayer_Frame steps through a 2×2 search: four exploration steps,
// then three path steps.
func ExamplePlayer_Frame() {
	g := gridgraph.New(2, 2)
	p := replay.NewPlayer(g, bfs.FindPath(g, false))

	for p.Next() {
		f := p.Frame()
		fmt.Printf("%d/%d %-9s %s\n", f.Step, f.Total, f.Phase, *f.Current)
	}
	// Output:
	// 1/7 exploring (0,0)
	// 2/7 exploring (0,1)
	// 3/7 exploring (1,0)
	// 4/7 exploring (1,1)
	// 5/7 revealing (0,0)
	// 6/7 revealing (0,1)
	// 7/7 done      (1,1)
}
