package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_summarizer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_summarizer_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Pipeline metrics
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_summarizer_searches_total",
			Help: "Total number of provider searches",
		},
		[]string{"provider", "status"},
	)

	ArticlesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_summarizer_articles_fetched_total",
			Help: "Total number of articles returned by providers",
		},
		[]string{"provider"},
	)

	ArticlesAnalyzed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_summarizer_articles_analyzed_total",
			Help: "Total number of articles analyzed",
		},
		[]string{"backend", "status"},
	)

	BatchProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_summarizer_batch_progress_ratio",
			Help: "Completed fraction of the most recently reported batch",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_summarizer_sessions_active",
			Help: "Number of open bookmark sessions",
		},
	)
)

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
