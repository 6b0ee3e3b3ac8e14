// Package metrics is the single source of truth for metric names, labels
// and help strings exposed by the admin API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adminapi"

// StoreFetchesTotal counts fetch-all intents per resource store.
// Labels:
//   - resource: the entity name (e.g. "documents")
//   - result: "ok" or "error"
var StoreFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_fetches_total",
		Help:      "Total number of fetch-all intents dispatched to resource stores.",
	},
	[]string{"resource", "result"},
)

// StoreMutationsTotal counts create/update/delete intents per resource store.
// Labels:
//   - resource: the entity name
//   - op: "create", "update" or "delete"
//   - result: "ok", "error" or "locked" (per-id mutation already in flight)
var StoreMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_mutations_total",
		Help:      "Total number of mutation intents dispatched to resource stores.",
	},
	[]string{"resource", "op", "result"},
)

// PayoutDecisionsTotal counts payout approvals and rejections.
// Label:
//   - decision: "approved" or "rejected"
var PayoutDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payout_decisions_total",
		Help:      "Total number of payout requests decided by an admin.",
	},
	[]string{"decision"},
)
