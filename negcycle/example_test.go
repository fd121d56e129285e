package negcycle_test

import (
	"fmt"

	"github.com/luk036/netoptim-go/digraph"
	"github.com/luk036/netoptim-go/negcycle"
	"github.com/luk036/netoptim-go/numeric"
)

func ExampleFinder_Howard() {
	g := digraph.NewDiGraph[numeric.Int64](3)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 0, -3)

	f := negcycle.New[numeric.Int64, numeric.Int64](g)
	dist := []numeric.Int64{0, 0, 0}

	cycle, ok := f.Howard(dist, func(e digraph.Edge[numeric.Int64]) numeric.Int64 { return e.Data })
	if !ok {
		fmt.Println("no negative cycle")
		return
	}

	var sum numeric.Int64
	for _, e := range cycle {
		fmt.Printf("%d -> %d (%d)\n", e.From, e.To, e.Data)
		sum = sum.Add(e.Data)
	}
	fmt.Println("total:", sum)

	// Output:
	// 0 -> 1 (1)
	// 1 -> 2 (1)
	// 2 -> 0 (-3)
	// total: -1
}
