package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/ghostmap"
	"github.com/aretw0/ghostmap/internal/config"
	"github.com/aretw0/ghostmap/pkg/adapters/memory"
	"github.com/aretw0/ghostmap/pkg/adapters/redis"
	"github.com/aretw0/ghostmap/pkg/observability"
	"github.com/aretw0/ghostmap/pkg/ports"
)

// Stack is everything a command needs to build solvers.
type Stack struct {
	Options []ghostmap.Option
	Metrics *observability.Metrics
	Cache   ports.ResultCache
	Logger  *slog.Logger

	closers []io.Closer
}

// Close releases the cache connection, if any.
func (s *Stack) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// NewStack turns the configuration into solver options with standard CLI
// conventions: metrics are always collected, and walk events are audited
// when debug is on.
func NewStack(ctx context.Context, cfg config.Config, logger *slog.Logger, debug bool) (*Stack, error) {
	s := &Stack{
		Metrics: observability.NewMetrics(nil),
		Logger:  logger,
	}

	cache, err := s.openCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	s.Cache = cache

	hooks := s.Metrics.Hooks()
	if debug {
		hooks = observability.Chain(hooks, observability.AuditHooks(logger))
	}

	s.Options = []ghostmap.Option{
		ghostmap.WithLogger(logger),
		ghostmap.WithStepBudget(cfg.StepBudget),
		ghostmap.WithWorkers(cfg.Workers),
		ghostmap.WithStrategy(ghostmap.Strategy(cfg.Strategy)),
		ghostmap.WithVerify(cfg.Verify),
		ghostmap.WithHooks(hooks),
	}
	if cache != nil {
		s.Options = append(s.Options, ghostmap.WithCache(cache))
	}
	return s, nil
}

func (s *Stack) openCache(ctx context.Context, cfg config.CacheConfig) (ports.ResultCache, error) {
	switch cfg.Backend {
	case config.BackendNone, "":
		return nil, nil
	case config.BackendMemory:
		return memory.NewCache(), nil
	case config.BackendRedis:
		c := redis.New(cfg.Addr, cfg.Password, cfg.DB,
			redis.WithPrefix(cfg.Prefix),
			redis.WithTTL(cfg.TTL),
		)
		if err := c.Ping(ctx); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("redis cache at %s: %w", cfg.Addr, err)
		}
		s.closers = append(s.closers, c)
		s.Logger.Debug("Redis cache connected", "addr", cfg.Addr)
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

var _ ports.ResultCache = (*memory.Cache)(nil)
var _ ports.ResultCache = (*redis.Cache)(nil)
