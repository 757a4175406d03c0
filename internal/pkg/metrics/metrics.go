// Package metrics defines and registers all custom Prometheus metrics for the
// site gateway. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "site_gateway"

// ── Backend call metrics ──────────────────────────────────────────────────────

// BackendRequestsTotal counts calls issued to the content backend.
// Labels:
//   - method: HTTP method ("GET", "POST")
//   - outcome: "ok", "api_error", "cors", or "network"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the content backend.",
	},
	[]string{"method", "outcome"},
)

// BackendRequestDuration measures round-trip time per backend call.
// Label:
//   - method: HTTP method
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend calls from request build to body read.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Submission journal metrics ────────────────────────────────────────────────

// SubmissionsJournaledTotal counts journal writes.
// Labels:
//   - kind: "application" or "contact"
//   - result: "ok" or "error"
var SubmissionsJournaledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_journaled_total",
		Help:      "Total number of submission journal writes, by result.",
	},
	[]string{"kind", "result"},
)

// JournalQueueDepth tracks entries waiting in each journal worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var JournalQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "journal_queue_depth",
		Help:      "Current number of submissions pending in each journal worker channel.",
	},
	[]string{"worker_id"},
)
