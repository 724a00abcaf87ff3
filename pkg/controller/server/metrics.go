package server

import (
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	toolInvocations *prometheus.CounterVec
	deployOutcomes  *prometheus.CounterVec
}

func newMetrics(registry *prometheus.Registry) *metrics {
	m := &metrics{
		toolInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ampship",
			Subsystem: "server",
			Name:      "tool_invocations_total",
			Help:      "Count of tool invocations by tool and result kind",
		}, []string{"tool", "result"}),
		deployOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ampship",
			Subsystem: "server",
			Name:      "deploy_outcomes_total",
			Help:      "Count of successful deploy invocations by outcome",
		}, []string{"outcome"}),
	}
	registry.MustRegister(m.toolInvocations, m.deployOutcomes)
	return m
}

func (x *metrics) invoked(tool, result string) {
	x.toolInvocations.With(prometheus.Labels{"tool": tool, "result": result}).Inc()
}

func (x *metrics) deployed(outcome model.DeployOutcome) {
	x.deployOutcomes.With(prometheus.Labels{"outcome": string(outcome)}).Inc()
}
