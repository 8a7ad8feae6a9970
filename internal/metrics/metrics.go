// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package metrics exposes Prometheus counters for the division path.
//
// Metrics live on a private registry so the optional --metrics-addr
// endpoint serves only divrun's own series, not the Go runtime defaults.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metricsDivision holds Prometheus metrics for the division path.
type metricsDivision struct {
	once sync.Once

	registry *prometheus.Registry

	divisions prometheus.Counter
	failures  prometheus.Counter
}

var divMetrics metricsDivision

func (m *metricsDivision) init() {
	m.once.Do(func() {
		m.registry = prometheus.NewRegistry()
		m.divisions = prometheus.NewCounter(prometheus.CounterOpts{Name: "divrun_divisions_total", Help: "Divisions attempted"})
		m.failures = prometheus.NewCounter(prometheus.CounterOpts{Name: "divrun_division_failures_total", Help: "Divisions rejected with a zero divisor"})
		m.registry.MustRegister(m.divisions, m.failures)
	})
}

// IncDivision records one attempted division.
func IncDivision() {
	divMetrics.init()
	divMetrics.divisions.Inc()
}

// IncFailure records one division rejected with a zero divisor.
func IncFailure() {
	divMetrics.init()
	divMetrics.failures.Inc()
}

// Handler returns an HTTP handler serving the divrun metrics.
func Handler() http.Handler {
	divMetrics.init()
	return promhttp.HandlerFor(divMetrics.registry, promhttp.HandlerOpts{})
}
