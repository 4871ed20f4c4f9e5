package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/ghostmap/pkg/domain"
)

// Chain merges hook sets; callbacks run in argument order.
func Chain(hooks ...domain.WalkHooks) domain.WalkHooks {
	var starts, ends []func(context.Context, *domain.WalkEvent)
	for _, h := range hooks {
		if h.OnWalkStart != nil {
			starts = append(starts, h.OnWalkStart)
		}
		if h.OnWalkEnd != nil {
			ends = append(ends, h.OnWalkEnd)
		}
	}

	var out domain.WalkHooks
	if len(starts) > 0 {
		out.OnWalkStart = func(ctx context.Context, e *domain.WalkEvent) {
			for _, fn := range starts {
				fn(ctx, e)
			}
		}
	}
	if len(ends) > 0 {
		out.OnWalkEnd = func(ctx context.Context, e *domain.WalkEvent) {
			for _, fn := range ends {
				fn(ctx, e)
			}
		}
	}
	return out
}

// AuditHooks logs every finished walk at info level.
func AuditHooks(logger *slog.Logger) domain.WalkHooks {
	return domain.WalkHooks{
		OnWalkEnd: func(ctx context.Context, e *domain.WalkEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "walk_end", "kind", e.Kind, "start", e.Start, "err", e.Err)
				return
			}
			logger.InfoContext(ctx, "walk_end",
				"kind", e.Kind,
				"start", e.Start,
				"steps", e.Steps,
				"duration", e.Duration,
			)
		},
	}
}
