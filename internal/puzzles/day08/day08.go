// Package day08 answers the "haunted wasteland" puzzle with the ghostmap solver.
package day08

import (
	"context"
	"fmt"

	"github.com/aretw0/ghostmap"
)

// Day is the calendar day this puzzle is registered under.
const Day = 8

// Puzzle implements registry.Puzzle.
type Puzzle struct {
	opts []ghostmap.Option
}

// New creates the puzzle; opts are passed to every solver it builds.
func New(opts ...ghostmap.Option) *Puzzle {
	return &Puzzle{opts: opts}
}

func (p *Puzzle) Day() int { return Day }

// Part1 counts the steps from AAA to ZZZ.
func (p *Puzzle) Part1(ctx context.Context, input string) (string, error) {
	solver, err := ghostmap.FromInput(input, p.opts...)
	if err != nil {
		return "", err
	}
	steps, err := solver.Steps(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(steps), nil
}

// Part2 synchronizes every ..A walker on ..Z nodes.
func (p *Puzzle) Part2(ctx context.Context, input string) (string, error) {
	solver, err := ghostmap.FromInput(input, p.opts...)
	if err != nil {
		return "", err
	}
	result, err := solver.Ghosts(ctx)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}
