package walk

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/bits"
	"runtime"
	"time"

	"github.com/aretw0/ghostmap/internal/logging"
	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/aretw0/ghostmap/pkg/instructions"
	"github.com/aretw0/ghostmap/pkg/network"
)

// DefaultStepBudget leaves the bound entirely to the network size.
const DefaultStepBudget uint64 = math.MaxUint64

// checkInterval is how many advances pass between context checks. Power of two.
const checkInterval = 1 << 16

// Engine runs walks over one network and instruction sequence.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	net     *network.Network
	seq     instructions.Sequence
	budget  uint64
	workers int
	verify  bool
	hooks   domain.WalkHooks
	logger  *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithStepBudget caps the number of advances of any single walk.
// Zero restores the default.
func WithStepBudget(steps uint64) EngineOption {
	return func(e *Engine) {
		if steps == 0 {
			steps = DefaultStepBudget
		}
		e.budget = steps
	}
}

// WithWorkers sets how many walkers a multi walk runs at once.
// Values below one mean runtime.NumCPU().
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		e.workers = n
	}
}

// WithVerify makes MultiWalk check each detected period against the walker's
// real cycle and log a warning when the LCM answer cannot be trusted.
func WithVerify(verify bool) EngineOption {
	return func(e *Engine) {
		e.verify = verify
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.WalkHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine for a network and instruction sequence.
func NewEngine(net *network.Network, seq instructions.Sequence, opts ...EngineOption) *Engine {
	e := &Engine{
		net:     net,
		seq:     seq,
		budget:  DefaultStepBudget,
		workers: runtime.NumCPU(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Network returns the network the engine walks.
func (e *Engine) Network() *network.Network {
	return e.net
}

// Instructions returns the instruction sequence.
func (e *Engine) Instructions() instructions.Sequence {
	return e.seq
}

// productStates is |nodes| * P, saturating at MaxUint64.
func (e *Engine) productStates() uint64 {
	return satMul(uint64(e.net.Len()), e.seq.Len())
}

// limit returns the tighter of the configured budget and factor * |nodes| * P.
func (e *Engine) limit(factor uint64) uint64 {
	return min(e.budget, satMul(factor, e.productStates()))
}

func (e *Engine) checkStart(start domain.Label) error {
	if !e.net.Contains(start) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownLabel, start)
	}
	return nil
}

// begin fires OnWalkStart and returns the matching completion callback.
func (e *Engine) begin(ctx context.Context, kind domain.WalkKind, start domain.Label) func(steps uint64, err error) {
	started := time.Now()
	if e.hooks.OnWalkStart != nil {
		e.hooks.OnWalkStart(ctx, &domain.WalkEvent{Timestamp: started, Kind: kind, Start: start})
	}
	e.logger.DebugContext(ctx, "walk started", "kind", kind, "start", start)

	return func(steps uint64, err error) {
		elapsed := time.Since(started)
		if err != nil {
			e.logger.DebugContext(ctx, "walk failed", "kind", kind, "start", start, "err", err)
		} else {
			e.logger.DebugContext(ctx, "walk finished", "kind", kind, "start", start, "steps", steps, "duration", elapsed)
		}
		if e.hooks.OnWalkEnd != nil {
			e.hooks.OnWalkEnd(ctx, &domain.WalkEvent{
				Timestamp: time.Now(),
				Kind:      kind,
				Start:     start,
				Steps:     steps,
				Duration:  elapsed,
				Err:       err,
			})
		}
	}
}

func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
