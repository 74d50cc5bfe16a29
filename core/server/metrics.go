/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"github.com/google/bitcalc/core/calc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the collectors of one server. Each server gets its own registry
// so several servers (and tests) can live in one process.
type metrics struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	expressions prometheus.Histogram
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bitcalc",
			Name:      "evaluations_total",
			Help:      "Evaluation requests by outcome",
		}, []string{"endpoint", "status"}),
		expressions: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bitcalc",
			Name:      "request_expressions",
			Help:      "Number of expressions submitted per request",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		}),
	}
}

func (m *metrics) observe(endpoint string, count int, status calc.Status) {
	m.expressions.Observe(float64(count))
	m.evaluations.WithLabelValues(endpoint, status.String()).Inc()
}
