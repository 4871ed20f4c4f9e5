package domain

import (
	"context"
	"time"
)

// WalkKind names the query a walk belongs to.
type WalkKind string

const (
	WalkSingle WalkKind = "single"
	WalkPeriod WalkKind = "period"
	WalkCycle  WalkKind = "cycle"
)

// WalkEvent describes one walker run.
type WalkEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Kind      WalkKind      `json:"kind"`
	Start     Label         `json:"start"`
	Steps     uint64        `json:"steps,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Err       error         `json:"-"`
}

// WalkHooks defines callbacks for engine observability.
// Hooks may be called from several goroutines at once during a multi walk.
type WalkHooks struct {
	OnWalkStart func(context.Context, *WalkEvent)
	OnWalkEnd   func(context.Context, *WalkEvent)
}
