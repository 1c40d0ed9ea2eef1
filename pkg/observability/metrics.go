package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/balance/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of a Balance process.
type Metrics struct {
	registry *prometheus.Registry

	steps    *prometheus.CounterVec
	verdicts *prometheus.CounterVec
	resets   prometheus.Counter
	depth    prometheus.Histogram
	length   prometheus.Histogram
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_steps_total",
				Help: "Total number of engine steps, by event kind",
			},
			[]string{"kind"},
		),
		verdicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_verdicts_total",
				Help: "Total number of finished sessions, by status and rejection reason",
			},
			[]string{"status", "reason"},
		),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "balance_resets_total",
			Help: "Total number of session resets and restarts",
		}),
		depth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "balance_stack_depth",
			Help:    "Stack depth observed after each step",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		}),
		length: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "balance_session_characters",
			Help:    "Characters consumed by a session before its verdict",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	m.registry.MustRegister(m.steps, m.verdicts, m.resets, m.depth, m.length)
	return m
}

// Registry exposes the underlying registry (for tests and custom exporters).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			m.steps.WithLabelValues(string(e.Event.Kind)).Inc()
			m.depth.Observe(float64(e.Depth))
		},
		OnVerdict: func(ctx context.Context, e *domain.StepEvent) {
			reason := string(e.Event.Reason)
			if reason == "" {
				reason = "none"
			}
			m.verdicts.WithLabelValues(string(e.Event.Status), reason).Inc()
			m.length.Observe(float64(e.Cursor))
		},
		OnReset: func(ctx context.Context, e *domain.StepEvent) {
			m.resets.Inc()
		},
	}
}

// WriteTextfile writes the current metrics in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
