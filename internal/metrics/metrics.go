// Package metrics holds the Prometheus collectors of noteflow.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/at-ishikawa/noteflow/internal/flow"
)

const namespace = "noteflow"

// Metrics is the set of collectors registered on one registry.
type Metrics struct {
	GatewayCalls    *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec
	FlowOutcomes    *prometheus.CounterVec
	RPCRequests     *prometheus.CounterVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GatewayCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "classifier_calls_total",
				Help:      "Total number of classifier service calls",
			},
			[]string{"operation", "outcome"},
		),
		GatewayDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "classifier_call_duration_seconds",
				Help:      "Duration of classifier service calls",
				Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"operation"},
		),
		FlowOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flow_outcomes_total",
				Help:      "Total number of finished flows by terminal state",
			},
			[]string{"flow", "outcome"}, // classify/categorize/convert/organize/chat, committed/awaiting_approval/...
		),
		RPCRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_requests_total",
				Help:      "Total number of RPC requests",
			},
			[]string{"procedure", "code"},
		),
	}
}

// ObserveGatewayCall records one classifier call that started at start.
func (m *Metrics) ObserveGatewayCall(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.GatewayCalls.WithLabelValues(operation, Outcome(err)).Inc()
	m.GatewayDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveFlow records the terminal state of a flow.
func (m *Metrics) ObserveFlow(name, outcome string) {
	if m == nil {
		return
	}
	m.FlowOutcomes.WithLabelValues(name, outcome).Inc()
}

// ObserveRPC records one handled RPC by its status code.
func (m *Metrics) ObserveRPC(procedure, code string) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
}

// Outcome labels err by its flow kind.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, flow.ErrNetwork):
		return "network_error"
	case errors.Is(err, flow.ErrService):
		return "service_error"
	case errors.Is(err, flow.ErrValidation):
		return "validation_error"
	case errors.Is(err, flow.ErrResolution):
		return "resolution_error"
	case errors.Is(err, flow.ErrConflict):
		return "conflict"
	case errors.Is(err, flow.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
