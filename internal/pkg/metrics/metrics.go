// Package metrics holds the Prometheus collectors for the booking and
// inspection pipeline. Collectors are created against an explicit registerer
// so tests can use an isolated registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carcheck"

// Pipeline holds the business-level counters incremented by the command
// handlers.
type Pipeline struct {
	ordersCreated        prometheus.Counter
	inspectionsCompleted prometheus.Counter
	reportsGenerated     *prometheus.CounterVec
	notifications        *prometheus.CounterVec
}

// NewPipeline registers the pipeline collectors with the given registerer.
func NewPipeline(registerer prometheus.Registerer) *Pipeline {
	factory := promauto.With(registerer)

	return &Pipeline{
		ordersCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_created_total",
				Help:      "Total number of inspection orders created.",
			},
		),
		inspectionsCompleted: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inspections_completed_total",
				Help:      "Total number of inspections finalized with a report.",
			},
		),
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reports_generated_total",
				Help:      "Total number of reports produced, by generator source.",
			},
			[]string{"source"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Total number of notification send attempts, by recipient and outcome.",
			},
			[]string{"recipient", "outcome"},
		),
	}
}

// OrderCreated records one created order.
func (p *Pipeline) OrderCreated() {
	p.ordersCreated.Inc()
}

// InspectionCompleted records one finalized inspection.
func (p *Pipeline) InspectionCompleted() {
	p.inspectionsCompleted.Inc()
}

// ReportGenerated records one produced report. source is the generator that
// produced it ("generative" or "fallback").
func (p *Pipeline) ReportGenerated(source string) {
	p.reportsGenerated.WithLabelValues(source).Inc()
}

// NotificationSent records the outcome of one notification send attempt.
func (p *Pipeline) NotificationSent(recipient string, sent bool) {
	outcome := "sent"
	if !sent {
		outcome = "failed"
	}
	p.notifications.WithLabelValues(recipient, outcome).Inc()
}
