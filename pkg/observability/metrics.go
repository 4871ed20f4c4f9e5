package observability

import (
	"context"
	"errors"
	"net/http"

	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for ghostmap_walks_total.
const (
	OutcomeOK       = "ok"
	OutcomeBudget   = "budget_exceeded"
	OutcomeCanceled = "canceled"
	OutcomeError    = "error"
)

// Metrics holds the Prometheus collectors fed by walk hooks.
type Metrics struct {
	Walks    *prometheus.CounterVec
	Steps    *prometheus.CounterVec
	Duration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg means a fresh private registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := newMetrics()
	reg.MustRegister(m.Walks, m.Steps, m.Duration)

	m.gatherer = prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

func newMetrics() *Metrics {
	return &Metrics{
		Walks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ghostmap_walks_total",
				Help: "Total number of finished walks by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ghostmap_walk_steps_total",
				Help: "Total number of steps reported by successful walks",
			},
			[]string{"kind"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ghostmap_walk_duration_seconds",
				Help:    "Duration of walks",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"kind"},
		),
	}
}

// Hooks returns engine hooks that record every finished walk.
func (m *Metrics) Hooks() domain.WalkHooks {
	return domain.WalkHooks{
		OnWalkEnd: func(ctx context.Context, e *domain.WalkEvent) {
			kind := string(e.Kind)
			m.Walks.WithLabelValues(kind, Outcome(e.Err)).Inc()
			m.Duration.WithLabelValues(kind).Observe(e.Duration.Seconds())
			if e.Err == nil {
				m.Steps.WithLabelValues(kind).Add(float64(e.Steps))
			}
		},
	}
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Outcome classifies a walk error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrStepBudgetExceeded), errors.Is(err, domain.ErrPeriodicityNotFound):
		return OutcomeBudget
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}
