package ghostmap

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/ghostmap/internal/logging"
	"github.com/aretw0/ghostmap/internal/parser"
	"github.com/aretw0/ghostmap/internal/walk"
	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/aretw0/ghostmap/pkg/instructions"
	"github.com/aretw0/ghostmap/pkg/network"
	"github.com/aretw0/ghostmap/pkg/ports"
	"lukechampine.com/uint128"
)

// Synchronization is the answer of a multi walk.
type Synchronization = walk.Synchronization

// Strategy selects how Ghosts combines the walkers.
type Strategy string

const (
	// StrategyLCM combines detected periods with a least common multiple.
	StrategyLCM Strategy = "lcm"
	// StrategyExact analyses every walker's cycle and solves the system of
	// congruences. Slower, but correct when walkers are not aligned.
	StrategyExact Strategy = "exact"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Solver is the high-level entry point for the ghostmap library.
// It wraps the walk engine and an optional answer cache.
type Solver struct {
	engine      *walk.Engine
	engineOpts  []walk.EngineOption
	strategy    Strategy
	cache       ports.ResultCache
	logger      *slog.Logger
	fingerprint string
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLogger sets a custom structured logger for the solver and its engine.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
		s.engineOpts = append(s.engineOpts, walk.WithLogger(logger))
	}
}

// WithStepBudget caps the advances of any single walk. Zero means unbounded
// beyond the network size.
func WithStepBudget(steps uint64) Option {
	return func(s *Solver) {
		s.engineOpts = append(s.engineOpts, walk.WithStepBudget(steps))
	}
}

// WithWorkers bounds how many walkers Ghosts runs at once.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		s.engineOpts = append(s.engineOpts, walk.WithWorkers(n))
	}
}

// WithStrategy selects the multi walk strategy (default: StrategyLCM).
func WithStrategy(strategy Strategy) Option {
	return func(s *Solver) {
		s.strategy = strategy
	}
}

// WithVerify checks LCM answers against each walker's real cycle and logs a
// warning when they disagree.
func WithVerify(verify bool) Option {
	return func(s *Solver) {
		s.engineOpts = append(s.engineOpts, walk.WithVerify(verify))
	}
}

// WithCache stores answers keyed by the puzzle fingerprint.
func WithCache(cache ports.ResultCache) Option {
	return func(s *Solver) {
		s.cache = cache
	}
}

// WithHooks registers observability hooks on the engine.
func WithHooks(hooks domain.WalkHooks) Option {
	return func(s *Solver) {
		s.engineOpts = append(s.engineOpts, walk.WithHooks(hooks))
	}
}

// New creates a solver over an already built network and sequence.
func New(net *network.Network, seq instructions.Sequence, opts ...Option) *Solver {
	s := &Solver{
		strategy: StrategyLCM,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = walk.NewEngine(net, seq, s.engineOpts...)
	s.fingerprint = fingerprint(net, seq)
	return s
}

// FromInput parses puzzle text and creates a solver for it.
func FromInput(text string, opts ...Option) (*Solver, error) {
	puzzle, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return New(puzzle.Network, puzzle.Instructions, opts...), nil
}

// Network returns the network being walked.
func (s *Solver) Network() *network.Network {
	return s.engine.Network()
}

// Instructions returns the instruction sequence.
func (s *Solver) Instructions() instructions.Sequence {
	return s.engine.Instructions()
}

// Fingerprint identifies the puzzle: a hex SHA-256 over the instructions and
// the node table in label order.
func (s *Solver) Fingerprint() string {
	return s.fingerprint
}

// Walk counts the steps from one label until the walker first reaches another.
func (s *Solver) Walk(ctx context.Context, from, to domain.Label) (uint64, error) {
	key := fmt.Sprintf("%s:walk:%s-%s", s.fingerprint, from, to)
	if cached, ok := s.lookup(ctx, key); ok {
		n, err := uint128.FromString(cached)
		if err == nil && n.Hi == 0 {
			return n.Lo, nil
		}
		s.logger.WarnContext(ctx, "ignoring malformed cached answer", "key", key, "value", cached)
	}

	steps, err := s.engine.SingleWalk(ctx, from, domain.Is(to))
	if err != nil {
		return 0, err
	}
	s.store(ctx, key, fmt.Sprint(steps))
	return steps, nil
}

// Steps answers the single walk from AAA to ZZZ.
func (s *Solver) Steps(ctx context.Context) (uint64, error) {
	return s.Walk(ctx, domain.StartLabel, domain.EndLabel)
}

// Ghosts walks every ..A node at once and returns the first step at which all
// of them stand on a ..Z node.
func (s *Solver) Ghosts(ctx context.Context) (Synchronization, error) {
	key := fmt.Sprintf("%s:ghosts:%s", s.fingerprint, s.strategy)
	if cached, ok := s.lookup(ctx, key); ok {
		n, err := uint128.FromString(cached)
		if err == nil {
			return Synchronization{Steps: n, Exact: s.strategy == StrategyExact}, nil
		}
		s.logger.WarnContext(ctx, "ignoring malformed cached answer", "key", key, "value", cached)
	}

	isStart := domain.Predicate(domain.Label.IsStart)
	accepting := domain.Predicate(domain.Label.IsAccepting)

	var (
		result Synchronization
		err    error
	)
	switch s.strategy {
	case StrategyLCM:
		result, err = s.engine.MultiWalk(ctx, isStart, accepting)
	case StrategyExact:
		result, err = s.engine.MultiWalkExact(ctx, isStart, accepting)
	default:
		return Synchronization{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, s.strategy)
	}
	if err != nil {
		return Synchronization{}, err
	}
	s.store(ctx, key, result.Steps.String())
	return result, nil
}

// Summary describes the network shape.
type Summary struct {
	Nodes        int            `json:"nodes"`
	Instructions uint64         `json:"instructions"`
	Starts       []domain.Label `json:"starts"`
	Accepting    []domain.Label `json:"accepting"`
	Fingerprint  string         `json:"fingerprint"`
}

// Summary reports node, start and accepting counts without walking.
func (s *Solver) Summary() Summary {
	net := s.engine.Network()
	return Summary{
		Nodes:        net.Len(),
		Instructions: s.engine.Instructions().Len(),
		Starts:       net.Select(domain.Label.IsStart),
		Accepting:    net.Select(domain.Label.IsAccepting),
		Fingerprint:  s.fingerprint,
	}
}

func (s *Solver) lookup(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	v, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.WarnContext(ctx, "cache lookup failed", "key", key, "err", err)
		}
		return "", false
	}
	s.logger.DebugContext(ctx, "cache hit", "key", key)
	return v, true
}

func (s *Solver) store(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.WarnContext(ctx, "cache store failed", "key", key, "err", err)
	}
}

func fingerprint(net *network.Network, seq instructions.Sequence) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\n\n", seq)
	for _, def := range net.Definitions() {
		fmt.Fprintf(h, "%s = (%s, %s)\n", def.Label, def.Node.Left, def.Node.Right)
	}
	return hex.EncodeToString(h.Sum(nil))
}
