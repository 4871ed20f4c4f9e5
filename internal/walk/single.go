package walk

import (
	"context"

	"github.com/aretw0/ghostmap/pkg/domain"
)

// SingleWalk advances a walker from start until terminal holds on the node it
// lands on, and returns the number of advances (the first landing is step 1).
//
// The walk is cut off after min(budget, |nodes| * P) advances: by then every
// reachable (phase, node) state has been visited, so the terminal is unreachable.
func (e *Engine) SingleWalk(ctx context.Context, start domain.Label, terminal domain.Predicate) (steps uint64, err error) {
	if err := e.checkStart(start); err != nil {
		return 0, err
	}
	done := e.begin(ctx, domain.WalkSingle, start)
	defer func() { done(steps, err) }()

	budget := e.limit(1)
	w := NewWalker(start)
	for w.Step < budget {
		if w.Step%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if terminal(w.Advance(e.net, e.seq)) {
			return w.Step, nil
		}
	}
	return 0, &domain.BudgetError{Start: start, Budget: budget, Err: domain.ErrStepBudgetExceeded}
}
