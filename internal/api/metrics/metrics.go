// Package metrics defines all custom Prometheus metrics for the restaurant
// backend. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant"

// SubmissionsTotal counts accepted public submissions.
// Label:
//   - kind: "booking", "contact" or "review"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of public submissions persisted, by kind.",
	},
	[]string{"kind"},
)

// SubmissionsRejectedTotal counts submissions refused before persistence.
// Label:
//   - reason: short description (e.g. "duplicate")
var SubmissionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_rejected_total",
		Help:      "Total number of public submissions rejected before the write.",
	},
	[]string{"reason"},
)

// EmailsTotal counts notification delivery attempts.
// Labels:
//   - template: which message was sent (e.g. "booking_customer", "booking_admin")
//   - outcome: "sent" or "failed"
var EmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_total",
		Help:      "Total number of notification email attempts, by template and outcome.",
	},
	[]string{"template", "outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
