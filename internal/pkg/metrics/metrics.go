// Package metrics defines and registers all custom Prometheus metrics for the
// decision journal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on package init via
// promauto; HTTP request metrics are added by the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "decision_replay"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts accounts created.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "disabled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthenticationFailuresTotal counts rejected bearer tokens. The reason label
// is internal only; callers always see UNAUTHORIZED.
// Label:
//   - reason: "missing", "unknown", "revoked", "expired", "inactive_user"
var AuthenticationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authentication_failures_total",
		Help:      "Total number of rejected bearer tokens, by reason.",
	},
	[]string{"reason"},
)

// ── Decision metrics ──────────────────────────────────────────────────────────

// DecisionWritesTotal counts decision mutations.
// Label:
//   - op: "create", "update" or "delete"
var DecisionWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decision_writes_total",
		Help:      "Total number of decision writes, by operation.",
	},
	[]string{"op"},
)

// DecisionQualityScore observes the score computed on each create/update.
var DecisionQualityScore = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "decision_quality_score",
		Help:      "Distribution of computed decision quality scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0, 10, …, 100
	},
)

// BiasSignalsTotal counts emitted bias signals.
// Label:
//   - type: the bias signal type (e.g. "overconfidence")
var BiasSignalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bias_signals_total",
		Help:      "Total number of bias signals emitted by the scoring engine, by type.",
	},
	[]string{"type"},
)

// ── Best-effort task metrics ──────────────────────────────────────────────────

// AsyncTasksTotal counts fire-and-forget tasks.
// Labels:
//   - task: task name (e.g. "audit", "session.touch")
//   - result: "ok", "failed" or "dropped"
var AsyncTasksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "async_tasks_total",
		Help:      "Total number of best-effort tasks, by task and result.",
	},
	[]string{"task", "result"},
)

// AsyncTasksInflight tracks tasks currently running.
var AsyncTasksInflight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "async_tasks_inflight",
		Help:      "Current number of best-effort tasks running.",
	},
)
