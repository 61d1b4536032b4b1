// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package check

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors filled by a sweep.
type Metrics struct {
	registry *prometheus.Registry

	maxError  *prometheus.GaugeVec
	meanError *prometheus.GaugeVec
	errors    *prometheus.HistogramVec
	samples   *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  *prometheus.GaugeVec
}

// NewMetrics registers the sweep collectors on a fresh registry.
func NewMetrics() *Metrics {
	labels := []string{"function", "backend"}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		maxError: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "simdcheck_max_error_ulp",
			Help: "Largest error seen in a sweep, in ulps",
		}, labels),
		meanError: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "simdcheck_mean_error_ulp",
			Help: "Mean error of a sweep, in ulps",
		}, labels),
		errors: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "simdcheck_error_ulp",
			Help:    "Distribution of per-sample errors, in ulps",
			Buckets: []float64{0, 0.5, 1, 2, 4, 8, 16, 64},
		}, labels),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "simdcheck_samples_total",
			Help: "Samples evaluated",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "simdcheck_failures_total",
			Help: "Sweeps whose maximum error exceeded the limit",
		}, labels),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "simdcheck_sweep_duration_seconds",
			Help: "Wall time of a sweep",
		}, labels),
	}
	m.registry.MustRegister(m.maxError, m.meanError, m.errors, m.samples, m.failures, m.duration)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the current values in the node exporter textfile
// format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(r Result, errs []float64, failed bool) {
	if m == nil {
		return
	}
	l := prometheus.Labels{"function": r.Function, "backend": r.Backend}
	m.maxError.With(l).Set(float64(r.MaxULP))
	m.meanError.With(l).Set(float64(r.MeanULP))
	m.samples.With(l).Add(float64(r.Samples))
	m.duration.With(l).Set(r.Duration.Seconds())
	h := m.errors.With(l)
	for _, e := range errs {
		h.Observe(e)
	}
	if failed {
		m.failures.With(l).Inc()
	}
}
