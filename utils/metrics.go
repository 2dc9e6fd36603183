package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Booking-path counters scraped at /metrics.
var (
	AvailabilityChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parkbay_availability_checks_total",
		Help: "Availability pre-checks by outcome (available, rejected).",
	}, []string{"outcome"})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkbay_bookings_created_total",
		Help: "Bookings committed as confirmed.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkbay_booking_conflicts_total",
		Help: "Booking attempts rejected by the storage-level overlap guard.",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parkbay_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)
