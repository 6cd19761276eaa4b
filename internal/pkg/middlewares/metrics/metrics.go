package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courierqueue_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route template",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route", "status"},
	)

	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courierqueue_http_requests_total",
			Help: "HTTP requests by route template and unit",
		},
		[]string{"method", "route", "status", "unit"},
	)
)
