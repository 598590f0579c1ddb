package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Movement counters are driven off the outbox relay, so they count
// committed mutations only.
var (
	MovementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_movements_total",
			Help: "Committed money movements by entity kind and operation.",
		},
		[]string{"kind", "op"},
	)

	EventsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "backoffice_events_published_total",
			Help: "Outbox events handed to the live event stream.",
		},
	)

	EventPublishFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "backoffice_event_publish_failures_total",
			Help: "Outbox events that failed to publish and will be retried.",
		},
	)
)
