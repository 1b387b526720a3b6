/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package metrics exposes Prometheus counters for the scoring pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	scoringRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lss_scoring_runs_total",
		Help: "Total scoring runs by terminal status.",
	}, []string{"status"})

	recordsScoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lss_records_scored_total",
		Help: "Total customer records scored.",
	})

	leadTiersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lss_lead_tiers_total",
		Help: "Total scored leads by assigned tier.",
	}, []string{"tier"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lss_scoring_run_duration_seconds",
		Help:    "Wall clock duration of scoring runs.",
		Buckets: prometheus.DefBuckets,
	})
)

// RecordRun registers a finished run with its terminal status and duration.
func RecordRun(status string, duration time.Duration) {
	scoringRunsTotal.WithLabelValues(status).Inc()
	runDuration.Observe(duration.Seconds())
}

// RecordScoredLeads registers scored records and their tier distribution.
func RecordScoredLeads(distribution map[string]int) {
	for tier, count := range distribution {
		leadTiersTotal.WithLabelValues(tier).Add(float64(count))
		recordsScoredTotal.Add(float64(count))
	}
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
