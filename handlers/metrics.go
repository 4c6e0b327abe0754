package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tripRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tlc_api_trip_requests_total",
		Help: "Total number of trip listing requests that passed validation.",
	}, []string{"source"})

	tripQueryFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tlc_api_trip_query_fallbacks_total",
		Help: "Total number of trip requests answered with the empty fallback after a query failure.",
	}, []string{"source"})
)
