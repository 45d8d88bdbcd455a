// Package metrics defines the custom Prometheus metrics of the content API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered against the Registerer passed to New so each router
// owns its registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "content_api"

// Result label values.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultStored   = "stored"
	ResultReplayed = "replayed"
	ResultRejected = "rejected"
)

type Metrics struct {
	// ContentWritesTotal counts successful admin writes.
	// Labels:
	//   - resource: collection route segment (e.g. "services")
	//   - operation: "create", "update" or "delete"
	ContentWritesTotal *prometheus.CounterVec

	// LoginAttemptsTotal counts login attempts.
	// Label:
	//   - result: "success" or "failure"
	LoginAttemptsTotal *prometheus.CounterVec

	// ContactSubmissionsTotal counts public contact form posts.
	// Label:
	//   - result: "stored", "replayed" (duplicate within the dedup window) or "rejected"
	ContactSubmissionsTotal *prometheus.CounterVec
}

// New creates and registers the metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ContentWritesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "content_writes_total",
				Help:      "Total number of content records created, updated or deleted.",
			},
			[]string{"resource", "operation"},
		),
		LoginAttemptsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Total number of admin login attempts, by result.",
			},
			[]string{"result"},
		),
		ContactSubmissionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "contact_submissions_total",
				Help:      "Total number of contact form submissions, by result.",
			},
			[]string{"result"},
		),
	}
}
