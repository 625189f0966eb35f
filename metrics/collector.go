// Package metrics exposes Prometheus-compatible counters and gauges for
// navigation engine activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector tracks navigate() outcomes, validation failures, and the
// shape of the presentation tree so operators can alert on navigation
// regressions the same way they would alert on request latency.
//
// Metrics exposed (all namespaced "navflow_"):
//
//  1. navigate_total (counter): every top-level navigate() call, labeled
//     by coordinator and result ("success"/"failure").
//  2. navigate_duration_ms (histogram): wall-clock duration of a
//     top-level navigate() call, labeled by coordinator.
//  3. validation_failures_total (counter): validation-phase rejections,
//     labeled by error code.
//  4. active_modals (gauge): coordinators with a currently active modal.
//  5. active_detours (gauge): coordinators with a currently active detour.
//  6. pushed_children_depth (gauge): number of child coordinators
//     currently pushed into each coordinator's stack.
type Collector struct {
	navigateTotal       *prometheus.CounterVec
	navigateDuration    *prometheus.HistogramVec
	validationFailures  *prometheus.CounterVec
	activeModals        prometheus.Gauge
	activeDetours       prometheus.Gauge
	pushedChildrenDepth *prometheus.GaugeVec

	enabled bool
}

// NewCollector registers all navigation metrics with registry. A nil
// registry uses prometheus.DefaultRegisterer.
func NewCollector(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Collector{
		enabled: true,
		navigateTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navflow",
			Name:      "navigate_total",
			Help:      "Total navigate() calls by coordinator and outcome",
		}, []string{"coordinator", "result"}),
		navigateDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "navflow",
			Name:      "navigate_duration_ms",
			Help:      "Wall-clock duration of a top-level navigate() call",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500},
		}, []string{"coordinator"}),
		validationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navflow",
			Name:      "validation_failures_total",
			Help:      "Validation-phase rejections by error code",
		}, []string{"code"}),
		activeModals: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "navflow",
			Name:      "active_modals",
			Help:      "Coordinators currently presenting a modal",
		}),
		activeDetours: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "navflow",
			Name:      "active_detours",
			Help:      "Coordinators currently presenting a detour",
		}),
		pushedChildrenDepth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "navflow",
			Name:      "pushed_children_depth",
			Help:      "Current number of pushed child coordinators per coordinator",
		}, []string{"coordinator"}),
	}
}

// RecordNavigate records the outcome and duration of a completed
// top-level navigate() call.
func (c *Collector) RecordNavigate(coordinator string, success bool, d time.Duration) {
	if c == nil || !c.enabled {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	c.navigateTotal.WithLabelValues(coordinator, result).Inc()
	c.navigateDuration.WithLabelValues(coordinator).Observe(float64(d.Microseconds()) / 1000.0)
}

// RecordValidationFailure increments the validation_failures_total
// counter for the given error code.
func (c *Collector) RecordValidationFailure(code string) {
	if c == nil || !c.enabled {
		return
	}
	c.validationFailures.WithLabelValues(code).Inc()
}

// SetModalActive adjusts the active_modals gauge by +1 or -1.
func (c *Collector) SetModalActive(active bool) {
	if c == nil || !c.enabled {
		return
	}
	if active {
		c.activeModals.Inc()
	} else {
		c.activeModals.Dec()
	}
}

// SetDetourActive adjusts the active_detours gauge by +1 or -1.
func (c *Collector) SetDetourActive(active bool) {
	if c == nil || !c.enabled {
		return
	}
	if active {
		c.activeDetours.Inc()
	} else {
		c.activeDetours.Dec()
	}
}

// SetPushedChildrenDepth records the current number of pushed child
// coordinators for a coordinator.
func (c *Collector) SetPushedChildrenDepth(coordinator string, depth int) {
	if c == nil || !c.enabled {
		return
	}
	c.pushedChildrenDepth.WithLabelValues(coordinator).Set(float64(depth))
}
