// Copyright (c) 2026 Cisco and/or its affiliates.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics provides the Prometheus metrics of the planner
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ipam_planner"

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds the planner collectors in their own registry
type Metrics struct {
	registry *prometheus.Registry

	plans       *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    prometheus.Histogram
	pools       *prometheus.GaugeVec
	utilization prometheus.Gauge
	generation  prometheus.Gauge
}

// New creates and registers the planner collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		plans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_total",
			Help:      "Total number of plan calculations by result",
		}, []string{"result"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_failures_total",
			Help:      "Total number of failed plan calculations by error kind",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_duration_seconds",
			Help:      "Plan calculation duration in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}),
		pools: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pools",
			Help:      "Number of pools in the last good plan by level",
		}, []string{"level"}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "utilization_percent",
			Help:      "Share of the top block covered by regional pools in the last good plan",
		}),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation",
			Help:      "Generation of the last good plan",
		}),
	}
	m.registry.MustRegister(m.plans, m.failures, m.duration, m.pools, m.utilization, m.generation)
	return m
}

// ObserveFailure records a failed calculation. kind is the error kind, "internal" for anything untyped.
func (m *Metrics) ObserveFailure(d time.Duration, kind string) {
	m.plans.WithLabelValues(ResultFailure).Inc()
	m.failures.WithLabelValues(kind).Inc()
	m.duration.Observe(d.Seconds())
}

// ObserveSuccess records a successful calculation and the shape of its plan
func (m *Metrics) ObserveSuccess(d time.Duration, generation uint64, pools map[string]int, utilization float64) {
	m.plans.WithLabelValues(ResultSuccess).Inc()
	m.duration.Observe(d.Seconds())
	m.generation.Set(float64(generation))
	m.utilization.Set(utilization)
	m.pools.Reset()
	for level, n := range pools {
		m.pools.WithLabelValues(level).Set(float64(n))
	}
}

// Gatherer returns the registry the collectors live in
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the current values in the text format the node exporter textfile collector reads
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	return nil
}
