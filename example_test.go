package ghostmap_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/ghostmap"
	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/aretw0/ghostmap/pkg/instructions"
	"github.com/aretw0/ghostmap/pkg/network"
)

// ExampleFromInput shows the single walk from AAA to ZZZ.
func ExampleFromInput() {
	solver, err := ghostmap.FromInput(`LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`)
	if err != nil {
		log.Fatal(err)
	}

	steps, err := solver.Steps(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(steps)
	// Output: 6
}

// ExampleSolver_Ghosts builds the network by hand and walks every ..A node at once.
func ExampleSolver_Ghosts() {
	l := domain.MustLabel
	net, err := network.Build([]domain.Definition{
		{Label: l("11A"), Node: domain.Node{Left: l("11B"), Right: l("XXX")}},
		{Label: l("11B"), Node: domain.Node{Left: l("XXX"), Right: l("11Z")}},
		{Label: l("11Z"), Node: domain.Node{Left: l("11B"), Right: l("XXX")}},
		{Label: l("22A"), Node: domain.Node{Left: l("22B"), Right: l("XXX")}},
		{Label: l("22B"), Node: domain.Node{Left: l("22C"), Right: l("22C")}},
		{Label: l("22C"), Node: domain.Node{Left: l("22Z"), Right: l("22Z")}},
		{Label: l("22Z"), Node: domain.Node{Left: l("22B"), Right: l("22B")}},
		{Label: l("XXX"), Node: domain.Node{Left: l("XXX"), Right: l("XXX")}},
	})
	if err != nil {
		log.Fatal(err)
	}
	seq, err := instructions.Parse("LR")
	if err != nil {
		log.Fatal(err)
	}

	result, err := ghostmap.New(net, seq).Ghosts(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result)
	for _, w := range result.Walks {
		fmt.Printf("%s every %d\n", w.Start, w.Period)
	}
	// Output:
	// 6
	// 11A every 2
	// 22A every 6
}
