// Package metrics defines and registers all custom Prometheus metrics for the
// oxefood delivery API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register against the default registry at package init; the HTTP
// layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "oxefood"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts authentication attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the identity filter.
// Label:
//   - reason: "malformed", "bad_signature", or "expired"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected during validation, by reason.",
	},
	[]string{"reason"},
)

// AuthzDecisionsTotal counts authorization matrix decisions.
// Label:
//   - decision: "allow", "unauthenticated", or "forbidden"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization decisions, by outcome.",
	},
	[]string{"decision"},
)

// AuditQueueDepth tracks the number of audit events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsDroppedTotal counts audit events discarded because a worker
// channel was full. A non-zero rate means the dispatcher is saturated.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditEventsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped on a full dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// SalesCreatedTotal counts newly registered sales.
// Label:
//   - pickup: "store" when the customer collects in store, "delivery" otherwise
var SalesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_created_total",
		Help:      "Total number of sales registered, by fulfilment kind.",
	},
	[]string{"pickup"},
)
