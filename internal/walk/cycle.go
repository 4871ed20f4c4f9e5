package walk

import (
	"context"
	"slices"

	"github.com/aretw0/ghostmap/pkg/domain"
)

// Cycle describes the eventually periodic trajectory of one walker in the
// (phase, node) product automaton: states repeat with period Length from step
// Offset onwards.
type Cycle struct {
	Start domain.Label `json:"start"`
	// Offset is the first step of the periodic part (the transient length).
	Offset uint64 `json:"offset"`
	// Length is the period of the state sequence.
	Length uint64 `json:"length"`
	// Transient lists accepting steps before Offset. Each happens exactly once.
	Transient []uint64 `json:"transient,omitempty"`
	// Residues lists r in [0, Length) such that every step t >= Offset with
	// t mod Length == r lands on an accepting node.
	Residues []uint64 `json:"residues,omitempty"`
}

// Accepts reports whether the walker is on an accepting node at step t >= 1.
func (c Cycle) Accepts(t uint64) bool {
	if t < c.Offset {
		_, found := slices.BinarySearch(c.Transient, t)
		return found
	}
	_, found := slices.BinarySearch(c.Residues, t%c.Length)
	return found
}

// Aligned reports whether every positive multiple of period is an accepting
// step, which is what the LCM combination silently relies on.
func (c Cycle) Aligned(period uint64) bool {
	return period >= c.Offset && period%c.Length == 0 && c.Accepts(period)
}

// DetectCycle finds the walker's exact cycle by recording the first step at
// which each (phase, node) state is seen, until a state repeats.
func (e *Engine) DetectCycle(ctx context.Context, start domain.Label, accepting domain.Predicate) (c Cycle, err error) {
	if err := e.checkStart(start); err != nil {
		return Cycle{}, err
	}
	done := e.begin(ctx, domain.WalkCycle, start)
	defer func() { done(c.Offset+c.Length, err) }()

	budget := e.limit(1)
	period := e.seq.Len()
	firstSeen := map[phaseKey]uint64{{phase: 0, node: start}: 0}
	var hits []uint64
	if accepting(start) {
		hits = append(hits, 0)
	}

	w := NewWalker(start)
	for w.Step < budget {
		if w.Step%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Cycle{}, err
			}
		}
		node := w.Advance(e.net, e.seq)
		key := phaseKey{phase: w.Step % period, node: node}
		if first, ok := firstSeen[key]; ok {
			return buildCycle(start, first, w.Step-first, hits), nil
		}
		firstSeen[key] = w.Step
		if accepting(node) {
			hits = append(hits, w.Step)
		}
	}
	return Cycle{}, &domain.BudgetError{Start: start, Budget: budget, Err: domain.ErrPeriodicityNotFound}
}

// buildCycle splits accepting steps into the transient part and cycle residues.
// hits holds accepting steps in [0, offset+length); step 0 is only present
// when the start node itself is accepting.
func buildCycle(start domain.Label, offset, length uint64, hits []uint64) Cycle {
	c := Cycle{Start: start, Offset: offset, Length: length}
	for _, t := range hits {
		if t < offset {
			c.Transient = append(c.Transient, t)
			continue
		}
		c.Residues = append(c.Residues, t%length)
	}
	slices.Sort(c.Residues)
	c.Residues = slices.Compact(c.Residues)
	return c
}
