package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gallery_board_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gallery_board_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// PostViewsTotal counts successful post views.
	PostViewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gallery_board_post_views_total",
		Help: "Total number of post views served",
	})

	// AuthRejectionsTotal counts requests turned away by the bearer gate.
	AuthRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gallery_board_auth_rejections_total",
		Help: "Requests rejected by the bearer gate by reason",
	}, []string{"reason"})
)
