/*
Package ghostmap walks left/right node networks driven by a cyclic instruction
sequence.

The input is a line of L/R instructions followed by a node table:

	RL

	AAA = (BBB, CCC)
	BBB = (DDD, EEE)
	CCC = (ZZZ, GGG)

Two questions are answered:

  - Steps: how many instructions a walker starting on AAA follows before it
    first reaches ZZZ.
  - Ghosts: starting one walker on every node ending in 'A', the first step
    at which all walkers stand on nodes ending in 'Z' at the same time.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"
		"os"

		"github.com/aretw0/ghostmap"
	)

	func main() {
		input, err := os.ReadFile("day08.txt")
		if err != nil {
			log.Fatal(err)
		}

		solver, err := ghostmap.FromInput(string(input))
		if err != nil {
			log.Fatal(err)
		}

		steps, err := solver.Steps(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(steps)
	}

Ghost answers can exceed 64 bits; they are returned as 128-bit integers and
overflow is reported as an error rather than wrapped.

# Strategies

By default Ghosts combines per-walker periods with a least common multiple,
which is correct when every walker is accepting at each multiple of its period.
WithStrategy(StrategyExact) drops that assumption at the cost of a full cycle
analysis per walker. WithVerify keeps the fast path but logs a warning when
the assumption does not hold.
*/
package ghostmap
