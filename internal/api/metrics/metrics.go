// Package metrics defines and registers all custom Prometheus metrics for the
// showcase API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "showcase"

// LoginsTotal counts authentication attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "access_denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts created accounts by role.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// ProjectsCreatedTotal counts newly created projects by type.
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by type.",
	},
	[]string{"type"},
)

// ProjectViewsTotal counts project detail reads.
var ProjectViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_views_total",
		Help:      "Total number of project detail views served.",
	},
)

// ActivityProcessedTotal counts audit-trail records successfully persisted.
// Label:
//   - action: "project_created", "project_updated", "project_deleted"
var ActivityProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_processed_total",
		Help:      "Total number of activity records successfully persisted.",
	},
	[]string{"action"},
)

// ActivityErrorsTotal counts audit-trail records that failed processing.
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity records that failed processing.",
	},
	[]string{"reason"},
)

// ActivityQueueDepth tracks pending records in each dispatcher worker channel.
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
