package landing

import (
	"context"
	"net/http"

	"github.com/MarkoPoloResearchLab/payfront/pkg/checkout"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "payfront"

// metrics holds the service collectors on a private registry so tests can build
// as many servers as they like.
type metrics struct {
	registry           *prometheus.Registry
	branches           *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
}

func newMetrics() *metrics {
	branches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "session",
			Name:      "branch_total",
			Help:      "Branch decisions by state.",
		},
		[]string{"state"},
	)
	validationFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "request",
			Name:      "validation_failures_total",
			Help:      "Rejected payment request parameters by subject.",
		},
		[]string{"subject"},
	)
	registry := prometheus.NewRegistry()
	registry.MustRegister(branches, validationFailures)
	for _, state := range []checkout.BranchState{checkout.NoSession, checkout.PaymentSession} {
		branches.WithLabelValues(string(state))
	}
	return &metrics{
		registry:           registry,
		branches:           branches,
		validationFailures: validationFailures,
	}
}

func (collector *metrics) ObserveBranch(_ context.Context, state checkout.BranchState) {
	collector.branches.WithLabelValues(string(state)).Inc()
}

func (collector *metrics) LogValidation(_ context.Context, entry checkout.ValidationLog) {
	collector.validationFailures.WithLabelValues(entry.Subject).Inc()
}

func (collector *metrics) handler() http.Handler {
	return promhttp.HandlerFor(collector.registry, promhttp.HandlerOpts{})
}
