package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherwear_upstream_requests_total",
			Help: "Upstream API requests by host and outcome.",
		},
		[]string{"host", "outcome"},
	)

	LocationFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherwear_location_fallbacks_total",
			Help: "Backup location provider invocations by resolver and primary failure reason.",
		},
		[]string{"resolver", "reason"},
	)

	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherwear_recommendations_total",
			Help: "Clothing recommendations by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherwear_http_requests_total",
			Help: "API requests by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)
)

func init() {
	prometheus.MustRegister(UpstreamRequestsTotal, LocationFallbacksTotal, RecommendationsTotal, HTTPRequestsTotal)
}
