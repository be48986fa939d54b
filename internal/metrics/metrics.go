// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "themestudio_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"code", "route"})
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "themestudio_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	PalettesGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "themestudio_palettes_generated_total",
		Help: "Total number of palettes generated over HTTP",
	}, []string{"kind"})
	ThemesGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "themestudio_themes_generated_total",
		Help: "Total number of themes generated over HTTP",
	}, []string{"mode"})
	TokensResolved = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "themestudio_tokens_resolved",
		Help:    "Number of tokens resolved per document",
		Buckets: prometheus.LinearBuckets(0, 25, 20),
	}, []string{"route"})
)
