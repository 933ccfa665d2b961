// Package observability holds Prometheus collectors of the HTTP server.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes of a training calculation.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var trainingsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ftracker",
	Subsystem: "trainings",
	Name:      "calculated_total",
	Help:      "Number of training calculations by type code and outcome.",
}, []string{"type", "outcome"})

func init() {
	prometheus.MustRegister(trainingsTotal)
}

// RecordTraining counts one calculation. Unknown codes are folded into
// "unknown" to keep label cardinality bounded.
func RecordTraining(code string, known bool, outcome string) {
	if !known {
		code = "unknown"
	}
	trainingsTotal.WithLabelValues(code, outcome).Inc()
}
