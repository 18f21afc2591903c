package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, path and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailcraft_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mailcraft_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// InvitationsCreated counts team invitations issued
	InvitationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mailcraft_invitations_created_total",
			Help: "Total number of team invitations created",
		},
	)

	// SubscribeAttempts counts email-capture submissions by outcome
	SubscribeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailcraft_subscribe_attempts_total",
			Help: "Total number of email capture attempts",
		},
		[]string{"outcome"},
	)
)
