package walk

import (
	"context"

	"github.com/aretw0/ghostmap/pkg/domain"
)

// phaseKey is one state of the (instruction phase, node) product automaton.
type phaseKey struct {
	phase uint64
	node  domain.Label
}

// DetectPeriod walks from start and records every accepting observation as
// (step mod P, node). It stops at the first observation that either repeats
// an earlier one or falls on phase zero, and returns that step.
//
// The returned step is used as the walker's period. That is exact when the
// walker's accepting visits are aligned with step zero; MultiWalkExact handles
// the general case.
func (e *Engine) DetectPeriod(ctx context.Context, start domain.Label, accepting domain.Predicate) (steps uint64, err error) {
	if err := e.checkStart(start); err != nil {
		return 0, err
	}
	done := e.begin(ctx, domain.WalkPeriod, start)
	defer func() { done(steps, err) }()

	// An accepting state on the cycle is first seen before |nodes|*P steps
	// and seen again at most |nodes|*P steps later.
	budget := e.limit(2)
	period := e.seq.Len()
	seen := make(map[phaseKey]struct{})

	w := NewWalker(start)
	for w.Step < budget {
		if w.Step%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		node := w.Advance(e.net, e.seq)
		if !accepting(node) {
			continue
		}
		key := phaseKey{phase: w.Step % period, node: node}
		if _, ok := seen[key]; ok || key.phase == 0 {
			return w.Step, nil
		}
		seen[key] = struct{}{}
	}
	return 0, &domain.BudgetError{Start: start, Budget: budget, Err: domain.ErrPeriodicityNotFound}
}
