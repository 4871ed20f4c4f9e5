package walk

import (
	"context"
	"fmt"

	"github.com/aretw0/ghostmap/pkg/domain"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/uint128"
)

// WalkReport is the per-walker outcome of a multi walk.
type WalkReport struct {
	Start  domain.Label `json:"start"`
	Period uint64       `json:"period,omitempty"`
	Cycle  *Cycle       `json:"cycle,omitempty"`
}

// Synchronization is the answer of a multi walk: the first step at which every
// walker stands on an accepting node.
type Synchronization struct {
	Steps uint128.Uint128
	Walks []WalkReport
	// Exact is true when Steps comes from full cycle analysis rather than LCM.
	Exact bool
}

func (s Synchronization) String() string {
	return s.Steps.String()
}

// MultiWalk runs DetectPeriod for every label matching isStart and combines
// the periods with a 128-bit LCM.
//
// The answer assumes each walker is accepting at every multiple of its
// detected period. With WithVerify the engine checks that assumption against
// the walker's real cycle and logs a warning when it fails.
func (e *Engine) MultiWalk(ctx context.Context, isStart, accepting domain.Predicate) (Synchronization, error) {
	starts := e.net.Select(isStart)
	if len(starts) == 0 {
		return Synchronization{}, domain.ErrNoStartNodes
	}

	reports := make([]WalkReport, len(starts))
	err := e.fanOut(ctx, starts, func(ctx context.Context, i int, start domain.Label) error {
		period, err := e.DetectPeriod(ctx, start, accepting)
		if err != nil {
			return err
		}
		reports[i] = WalkReport{Start: start, Period: period}

		if !e.verify {
			return nil
		}
		c, err := e.DetectCycle(ctx, start, accepting)
		if err != nil {
			return err
		}
		reports[i].Cycle = &c
		if !c.Aligned(period) {
			e.logger.WarnContext(ctx, "period is not aligned with the walker's cycle, LCM answer is unreliable",
				"start", start, "period", period, "offset", c.Offset, "length", c.Length)
		}
		return nil
	})
	if err != nil {
		return Synchronization{}, err
	}

	periods := make([]uint64, len(reports))
	for i, r := range reports {
		periods[i] = r.Period
	}
	steps, err := LCMOf(periods...)
	if err != nil {
		return Synchronization{}, fmt.Errorf("combining %d periods: %w", len(periods), err)
	}

	e.logger.InfoContext(ctx, "walkers synchronized", "walkers", len(starts), "steps", steps.String())
	return Synchronization{Steps: steps, Walks: reports}, nil
}

// MultiWalkExact analyses the full cycle of every walker and returns the
// first step at which all of them accept, without assuming aligned periods.
func (e *Engine) MultiWalkExact(ctx context.Context, isStart, accepting domain.Predicate) (Synchronization, error) {
	starts := e.net.Select(isStart)
	if len(starts) == 0 {
		return Synchronization{}, domain.ErrNoStartNodes
	}

	cycles := make([]Cycle, len(starts))
	err := e.fanOut(ctx, starts, func(ctx context.Context, i int, start domain.Label) error {
		c, err := e.DetectCycle(ctx, start, accepting)
		if err != nil {
			return err
		}
		cycles[i] = c
		return nil
	})
	if err != nil {
		return Synchronization{}, err
	}

	steps, err := Synchronize(cycles)
	if err != nil {
		return Synchronization{}, fmt.Errorf("synchronizing %d walkers: %w", len(cycles), err)
	}

	reports := make([]WalkReport, len(cycles))
	for i := range cycles {
		reports[i] = WalkReport{Start: cycles[i].Start, Period: cycles[i].Length, Cycle: &cycles[i]}
	}
	e.logger.InfoContext(ctx, "walkers synchronized", "walkers", len(starts), "steps", steps.String(), "exact", true)
	return Synchronization{Steps: steps, Walks: reports, Exact: true}, nil
}

// fanOut runs fn for every start on at most e.workers goroutines. Each call
// writes only to its own index, so no further locking is needed.
func (e *Engine) fanOut(ctx context.Context, starts []domain.Label, fn func(context.Context, int, domain.Label) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, start := range starts {
		g.Go(func() error {
			return fn(gctx, i, start)
		})
	}
	return g.Wait()
}
