package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reservation outcome labels.
const (
	OutcomeConfirmed = "confirmed"
	OutcomeNotFound  = "event_not_found"
	OutcomeNotEnough = "not_enough_seats"
	OutcomeConflict  = "seats_taken"
	OutcomeError     = "storage_error"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kabarett_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kabarett_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	reservations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kabarett_reservations_total",
			Help: "Reservation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	ticketsReserved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kabarett_tickets_reserved_total",
			Help: "Tickets reserved across all confirmed reservations.",
		},
	)
)

// TrackRequest records one handled HTTP request.
func TrackRequest(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// TrackReservation records a reservation attempt. Tickets are only
// added to the sold counter for confirmed outcomes.
func TrackReservation(outcome string, tickets int) {
	reservations.WithLabelValues(outcome).Inc()
	if outcome == OutcomeConfirmed {
		ticketsReserved.Add(float64(tickets))
	}
}
