package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the booking API.
type Metrics struct {
	HTTPRequests         *prometheus.CounterVec
	RegistrationSaves    *prometheus.CounterVec
	HeadersCreated       prometheus.Counter
	ParticipationInserts prometheus.Counter
	ParticipationUpdates prometheus.Counter
}

// New creates and registers all metrics against the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_http_requests_total",
			Help: "Total number of HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		RegistrationSaves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_registration_saves_total",
			Help: "Total number of registration save runs by event kind and outcome.",
		}, []string{"kind", "outcome"}),
		HeadersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_registration_headers_created_total",
			Help: "Total number of registration headers created.",
		}),
		ParticipationInserts: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_participation_inserts_total",
			Help: "Total number of participation records inserted.",
		}),
		ParticipationUpdates: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_participation_updates_total",
			Help: "Total number of participation status updates written.",
		}),
	}
}
